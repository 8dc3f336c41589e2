package service

import (
	"context"
	"strings"
	"time"

	"notalx/dao"
	"notalx/models"
	"notalx/pkg/response"
	"notalx/pkg/snowflake"
	"notalx/pkg/strutil"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, name, email string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Search(ctx context.Context, prefix string, limit int) ([]*models.User, error)
}

type UserService struct {
	Users      *dao.UserDAO
	Dispatcher *Dispatcher
}

// Register 注册用户，name/email 全局唯一
func (s *UserService) Register(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if !strutil.IsValidUserName(name) {
		return nil, response.Validation("Name must be 3-32 characters of a-z, 0-9, '-' or '_'")
	}
	if !strutil.IsValidEmail(email) {
		return nil, response.Validation("Invalid email address")
	}
	if s.Users.IsNameExist(ctx, name) {
		return nil, response.Conflict("This name is already taken")
	}
	if s.Users.IsEmailExist(ctx, email) {
		return nil, response.Conflict("An account with this email already exists")
	}

	user := &models.User{
		ID:        snowflake.GenID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.Dispatcher.Dispatch(
		models.NotificationWelcome,
		"Welcome to NotalX",
		"Your account is ready. Create a note to get started.",
		nil,
		[]int64{user.ID},
	)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.Users.FindById(ctx, id)
}

// Search 按用户名前缀检索，用于邀请协作者
func (s *UserService) Search(ctx context.Context, prefix string, limit int) ([]*models.User, error) {
	prefix = strings.TrimSpace(strings.ToLower(prefix))
	if prefix == "" {
		return []*models.User{}, nil
	}
	return s.Users.SearchByName(ctx, prefix, limit)
}
