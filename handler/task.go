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

type Task struct {
	Guard       *middleware.Guard
	TaskService service.ITaskService
}

func (h *Task) RegisterRouter(r gin.IRouter) {
	note := r.Group("/note/:note_id/task", h.Guard.Auth(), h.Guard.ValidateNoteID())
	note.POST("", h.Guard.NoteCollaborator(models.PermissionWrite), context.Wrap(h.CreateSchedule))
	note.GET("", h.Guard.NoteCollaborator(models.PermissionRead), context.Wrap(h.ListByNote))

	one := r.Group("/task/:task_id", h.Guard.Auth(), h.Guard.ValidateTaskID())
	one.GET("", h.Guard.TaskParticipant(), context.Wrap(h.Get))
	one.PUT("", h.Guard.TaskOwner(), context.Wrap(h.Update))
	one.DELETE("", h.Guard.TaskOwner(), context.Wrap(h.Delete))
	one.DELETE("/participants", h.Guard.TaskOwner(), context.Wrap(h.RemoveParticipant))
}

// CreateSchedule 让 LLM 从笔记正文抽取日程
func (h *Task) CreateSchedule(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	tasks, err := h.TaskService.CreateSchedule(c.Request.Context(), note, uid)
	if err != nil {
		return err
	}

	response.Success(c, types.ListTasksResponse{Tasks: tasks})
	return nil
}

func (h *Task) ListByNote(c *gin.Context) error {
	note, err := context.GetNote(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	resp, err := h.TaskService.ListByNote(c.Request.Context(), note.ID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (h *Task) Get(c *gin.Context) error {
	task, err := context.GetTask(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	info, err := h.TaskService.Get(c.Request.Context(), task)
	if err != nil {
		return err
	}

	response.Success(c, info)
	return nil
}

func (h *Task) Update(c *gin.Context) error {
	task, err := context.GetTask(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	var req types.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Malformed request body")
	}

	info, err := h.TaskService.Update(c.Request.Context(), task, &req)
	if err != nil {
		return err
	}

	response.Success(c, info)
	return nil
}

func (h *Task) Delete(c *gin.Context) error {
	task, err := context.GetTask(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	if err := h.TaskService.Delete(c.Request.Context(), task); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Task deleted"})
	return nil
}

// RemoveParticipant 所有者移除参与者，不能移除自己
func (h *Task) RemoveParticipant(c *gin.Context) error {
	task, err := context.GetTask(c)
	if err != nil {
		return response.Internal(err.Error())
	}

	var req types.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("User id is required")
	}

	if err := h.TaskService.RemoveParticipant(c.Request.Context(), task, req.UserID); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Participant removed"})
	return nil
}
