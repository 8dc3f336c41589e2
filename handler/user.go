package handler

import (
	"notalx/middleware"
	"notalx/pkg/context"
	"notalx/pkg/response"
	"notalx/service"
	"notalx/types"

	"github.com/gin-gonic/gin"
)

const searchLimit = 10

type User struct {
	Guard       *middleware.Guard
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.POST("", context.Wrap(h.Register))

	authed := g.Group("", h.Guard.Auth())
	authed.GET("/me", context.Wrap(h.Me))
	authed.GET("/search", context.Wrap(h.Search))
}

// Register 注册
func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Name and email are required")
	}

	user, err := h.UserService.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		return err
	}

	response.Success(c, types.ToUserInfo(user))
	return nil
}

func (h *User) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	user, err := h.UserService.Get(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, types.ToUserInfo(user))
	return nil
}

// Search 按用户名前缀检索，供邀请协作者使用
func (h *User) Search(c *gin.Context) error {
	users, err := h.UserService.Search(c.Request.Context(), c.Query("q"), searchLimit)
	if err != nil {
		return err
	}

	resp := types.SearchUsersResponse{Users: make([]*types.UserInfo, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, types.ToUserInfo(user))
	}
	response.Success(c, resp)
	return nil
}
