package handler

import (
	"strconv"

	"notalx/middleware"
	"notalx/models"
	"notalx/pkg/context"
	"notalx/pkg/response"
	"notalx/service"
	"notalx/types"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Guard       *middleware.Guard
	NoteService service.INoteService
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	g := r.Group("/note", h.Guard.Auth())
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))

	// 删除不过存在性校验，重复删除也返回成功
	g.DELETE("/:note_id", context.Wrap(h.Delete))

	one := g.Group("/:note_id", h.Guard.ValidateNoteID())
	one.GET("", h.Guard.NoteCollaborator(models.PermissionRead), context.Wrap(h.Get))
	one.PUT("", h.Guard.NoteCollaborator(models.PermissionWrite), context.Wrap(h.Update))
	one.GET("/history", h.Guard.NoteCollaborator(models.PermissionRead), context.Wrap(h.History))
}

// Create 创建占位笔记
func (h *Note) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	note, err := h.NoteService.Create(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, types.ToNoteInfo(note))
	return nil
}

// List 自己的与被共享的笔记
func (h *Note) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	p := context.GetPagination(c)
	resp, err := h.NoteService.List(c.Request.Context(), uid, p.Limit(), p.Offset())
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (h *Note) Get(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	response.Success(c, types.ToNoteInfo(note))
	return nil
}

func (h *Note) Update(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Malformed request body")
	}

	fresh, err := h.NoteService.Update(c.Request.Context(), note, uid, &req)
	if err != nil {
		return err
	}

	response.Success(c, types.ToNoteInfo(fresh))
	return nil
}

// Delete 所有者硬删除
func (h *Note) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	id, err := strconv.ParseInt(c.Param("note_id"), 10, 64)
	if err != nil || id <= 0 {
		return response.Validation("Invalid note id")
	}

	if err := h.NoteService.Delete(c.Request.Context(), id, uid); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Note deleted"})
	return nil
}

func (h *Note) History(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	p := context.GetPagination(c)
	resp, err := h.NoteService.History(c.Request.Context(), note.ID, p.Limit(), p.Offset())
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
