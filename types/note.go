package types

import (
	"time"

	"notalx/models"
)

// UpdateNoteRequest 指针字段区分 "未提交" 与 "清空"
type UpdateNoteRequest struct {
	Title           *string  `json:"title"`
	Content         *string  `json:"content"`
	CategoryName    *string  `json:"category_name"`
	Tags            []string `json:"tags"`
	WillSelfDestroy *bool    `json:"will_self_destroy"`
	SelfDestroyTime *string  `json:"self_destroy_time"`
}

type NoteInfo struct {
	ID              int64      `json:"id"`
	OwnerID         int64      `json:"owner_id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	CategoryName    string     `json:"category_name"`
	Tags            []string   `json:"tags"`
	WillSelfDestroy bool       `json:"will_self_destroy"`
	SelfDestroyTime *time.Time `json:"self_destroy_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes []*NoteInfo `json:"notes"`
	Total int64       `json:"total"`
}

type NoteHistoryEntry struct {
	ID          int64     `json:"id"`
	EditorID    int64     `json:"editor_id"`
	PrevTitle   string    `json:"prev_title"`
	PrevContent string    `json:"prev_content"`
	CreatedAt   time.Time `json:"created_at"`
}

type NoteHistoryResponse struct {
	Entries []*NoteHistoryEntry `json:"entries"`
	Total   int64               `json:"total"`
}

// ToNoteInfo 模型转响应对象
func ToNoteInfo(n *models.Note) *NoteInfo {
	info := &NoteInfo{
		ID:              n.ID,
		OwnerID:         n.OwnerID,
		Title:           n.Title,
		Content:         n.Content,
		CategoryName:    n.CategoryName,
		Tags:            make([]string, 0),
		WillSelfDestroy: n.WillSelfDestroy,
		SelfDestroyTime: n.SelfDestroyTime,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
	if len(n.Tags) > 0 {
		_ = jsonUnmarshal(n.Tags, &info.Tags)
	}
	return info
}
