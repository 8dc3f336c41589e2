package handler

import (
	"notalx/middleware"
	"notalx/models"
	"notalx/pkg/context"
	"notalx/pkg/response"
	"notalx/service"
	"notalx/types"

	"github.com/gin-gonic/gin"
)

type Collaborator struct {
	Guard               *middleware.Guard
	CollaboratorService service.ICollaboratorService
}

func (h *Collaborator) RegisterRouter(r gin.IRouter) {
	g := r.Group("/note/:note_id", h.Guard.Auth(), h.Guard.ValidateNoteID())
	g.GET("/collaborators", h.Guard.NoteCollaborator(models.PermissionRead), context.Wrap(h.List))

	owner := g.Group("/collaborator", h.Guard.NoteOwner())
	owner.POST("", context.Wrap(h.Add))
	owner.PUT("", context.Wrap(h.UpdatePermission))
	owner.DELETE("", context.Wrap(h.Remove))
}

func (h *Collaborator) List(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	resp, err := h.CollaboratorService.List(c.Request.Context(), note)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// Add 邀请协作者并推送通知
func (h *Collaborator) Add(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	var req types.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("User id and permission are required")
	}

	if err := h.CollaboratorService.Add(c.Request.Context(), note, req.UserID, req.Permission); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Collaborator added"})
	return nil
}

func (h *Collaborator) UpdatePermission(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	var req types.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("User id and permission are required")
	}

	if err := h.CollaboratorService.UpdatePermission(c.Request.Context(), note, req.UserID, req.Permission); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Permission updated"})
	return nil
}

// Remove 移除协作者，目标不在列表中也算成功
func (h *Collaborator) Remove(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	var req types.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("User id is required")
	}

	if err := h.CollaboratorService.Remove(c.Request.Context(), note, req.UserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Collaborator removed"})
	return nil
}
