//go:build wireinject

package service

import (
	"notalx/dao"
	"notalx/pkg/mail"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
	wire.Bind(new(userFinder), new(*dao.UserDAO)),
	wire.Bind(new(otpMailer), new(*mail.Mailer)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(CollaboratorService), "*"),
	wire.Bind(new(ICollaboratorService), new(*CollaboratorService)),
	wire.Bind(new(userReader), new(*dao.UserDAO)),
	wire.Bind(new(collaboratorStore), new(*dao.CollaboratorDAO)),

	wire.Struct(new(TaskService), "*"),
	wire.Bind(new(ITaskService), new(*TaskService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	NewDispatcher,
	NewSweeper,
)
