package context

import (
	"errors"
	"net/http"
	"strconv"

	"notalx/models"
	"notalx/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxAuthToken = "auth_token"
	CtxNote      = "note"
	CtxTask      = "task"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Status:  response.StatusErr,
					Message: be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Status:  response.StatusErr,
				Message: err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// Pagination 分页参数，显式结构体代替隐式请求上下文
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// GetPagination 解析 page/page_size 参数，非法值回落默认值
func GetPagination(c *gin.Context) Pagination {
	p := Pagination{Page: defaultPage, PageSize: defaultPageSize}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 {
		p.PageSize = v
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	return p
}

// GetNote 取出 ValidateNoteID 中间件预加载的笔记
func GetNote(c *gin.Context) (*models.Note, error) {
	v, ok := c.Get(CtxNote)
	if !ok {
		return nil, errors.New("note 不存在")
	}

	note, ok := v.(*models.Note)
	if !ok {
		return nil, errors.New("note 类型错误")
	}

	return note, nil
}

// GetTask 取出 ValidateTaskID 中间件预加载的任务
func GetTask(c *gin.Context) (*models.Task, error) {
	v, ok := c.Get(CtxTask)
	if !ok {
		return nil, errors.New("task 不存在")
	}

	task, ok := v.(*models.Task)
	if !ok {
		return nil, errors.New("task 类型错误")
	}

	return task, nil
}

func GetAuthToken(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxAuthToken)
	if !ok {
		return "", errors.New("auth token 不存在")
	}

	token, ok := v.(string)
	if !ok {
		return "", errors.New("auth token 类型错误")
	}

	return token, nil
}
