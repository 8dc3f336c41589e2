package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"notalx/models"
	pkgctx "notalx/pkg/context"
	"notalx/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidateNoteID 校验 note_id 语法与存在性，装载笔记供后续闸门复用
func (g *Guard) ValidateNoteID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("note_id"), 10, 64)
		if err != nil || id <= 0 {
			response.Abort(c, http.StatusBadRequest, "Invalid note id")
			return
		}

		note, err := g.Notes.FindById(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusNotFound, "Note not found")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "Note lookup failed")
			return
		}

		c.Set(pkgctx.CtxNote, note)
		c.Next()
	}
}

// NoteOwner 仅笔记所有者可通过，要求 ValidateNoteID 已执行
func (g *Guard) NoteOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		note, uid, ok := noteAndUser(c)
		if !ok {
			return
		}
		if note.OwnerID != uid {
			response.Abort(c, http.StatusUnauthorized, "Only the note owner can do this")
			return
		}
		c.Next()
	}
}

// NoteCollaborator 按权限等级放行，所有者隐含 write，
// 等级按下标比较：write 隐含 read，反之不成立
func (g *Guard) NoteCollaborator(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		note, uid, ok := noteAndUser(c)
		if !ok {
			return
		}
		if note.OwnerID == uid {
			c.Next()
			return
		}

		row, err := g.Collaborators.FindByNoteAndUser(c.Request.Context(), note.ID, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusUnauthorized, "You do not have access to this note")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "Collaborator lookup failed")
			return
		}

		if models.PermissionRank(row.Permission) < models.PermissionRank(required) {
			response.Abort(c, http.StatusUnauthorized, "You do not have "+required+" access to this note")
			return
		}
		c.Next()
	}
}

// ValidateTaskID 校验 task_id 语法与存在性，装载日程
func (g *Guard) ValidateTaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
		if err != nil || id <= 0 {
			response.Abort(c, http.StatusBadRequest, "Invalid task id")
			return
		}

		task, err := g.Tasks.FindById(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusNotFound, "Task not found")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "Task lookup failed")
			return
		}

		c.Set(pkgctx.CtxTask, task)
		c.Next()
	}
}

// TaskOwner 仅日程所有者可通过
func (g *Guard) TaskOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		task, uid, ok := taskAndUser(c)
		if !ok {
			return
		}
		if task.OwnerID != uid {
			response.Abort(c, http.StatusUnauthorized, "Only the task owner can do this")
			return
		}
		c.Next()
	}
}

// TaskParticipant 参与者或所有者可通过，所有者隐含参与
func (g *Guard) TaskParticipant() gin.HandlerFunc {
	return func(c *gin.Context) {
		task, uid, ok := taskAndUser(c)
		if !ok {
			return
		}
		if task.OwnerID == uid {
			c.Next()
			return
		}
		if !g.Participants.IsParticipant(c.Request.Context(), task.ID, uid) {
			response.Abort(c, http.StatusUnauthorized, "You are not a participant of this task")
			return
		}
		c.Next()
	}
}

func noteAndUser(c *gin.Context) (*models.Note, int64, bool) {
	uid, err := pkgctx.GetUserID(c)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "Not logged in")
		return nil, 0, false
	}
	v, exists := c.Get(pkgctx.CtxNote)
	note, okType := v.(*models.Note)
	if !exists || !okType {
		response.Abort(c, http.StatusInternalServerError, "Note not loaded")
		return nil, 0, false
	}
	return note, uid, true
}

func taskAndUser(c *gin.Context) (*models.Task, int64, bool) {
	uid, err := pkgctx.GetUserID(c)
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, "Not logged in")
		return nil, 0, false
	}
	v, exists := c.Get(pkgctx.CtxTask)
	task, okType := v.(*models.Task)
	if !exists || !okType {
		response.Abort(c, http.StatusInternalServerError, "Task not loaded")
		return nil, 0, false
	}
	return task, uid, true
}
