package server

import (
	"notalx/handler"
)

type Handlers struct {
	Otp          *handler.Otp
	User         *handler.User
	Note         *handler.Note
	Collaborator *handler.Collaborator
	Task         *handler.Task
	Notification *handler.Notification
}
