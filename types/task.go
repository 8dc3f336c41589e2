package types

import (
	"time"

	"notalx/models"
)

type UpdateTaskRequest struct {
	Name         *string `json:"name"`
	Date         *string `json:"date"`
	Duration     *string `json:"duration"`
	Location     *string `json:"location"`
	Participants []int64 `json:"participants"`
}

type TaskInfo struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	NoteID       int64     `json:"note_id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Reminder     time.Time `json:"reminder"`
	Duration     string    `json:"duration"`
	Location     string    `json:"location"`
	Participants []int64   `json:"participants,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListTasksResponse struct {
	Tasks []*TaskInfo `json:"tasks"`
}

type RemoveParticipantRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

func ToTaskInfo(t *models.Task) *TaskInfo {
	return &TaskInfo{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		NoteID:    t.NoteID,
		Name:      t.Name,
		Date:      t.Date,
		Reminder:  t.Reminder,
		Duration:  t.Duration,
		Location:  t.Location,
		CreatedAt: t.CreatedAt,
	}
}
