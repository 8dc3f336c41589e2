package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"notalx/dao"
	"notalx/models"
	"notalx/pkg/log"
	"notalx/pkg/response"
	"notalx/pkg/snowflake"
	"notalx/pkg/strutil"
	"notalx/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	Create(ctx context.Context, ownerID int64) (*models.Note, error)
	List(ctx context.Context, userID int64, limit, offset int) (*types.ListNotesResponse, error)
	Update(ctx context.Context, note *models.Note, editorID int64, req *types.UpdateNoteRequest) (*models.Note, error)
	Delete(ctx context.Context, noteID, requesterID int64) error
	History(ctx context.Context, noteID int64, limit, offset int) (*types.NoteHistoryResponse, error)
}

type NoteService struct {
	Notes         *dao.NoteDAO
	Histories     *dao.NoteHistoryDAO
	Collaborators *dao.CollaboratorDAO
	Tasks         *dao.TaskDAO
	Participants  *dao.TaskParticipantDAO
}

// Create 创建占位笔记，同步写入所有者协作记录
func (s *NoteService) Create(ctx context.Context, ownerID int64) (*models.Note, error) {
	note := &models.Note{
		ID:        snowflake.GenID(),
		OwnerID:   ownerID,
		Title:     "Untitled",
		Content:   "",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Notes.Create(ctx, note); err != nil {
		return nil, err
	}

	owner := &models.Collaborator{
		ID:         snowflake.GenID(),
		NoteID:     note.ID,
		UserID:     ownerID,
		Permission: models.PermissionWrite,
		CreatedAt:  time.Now(),
	}
	if err := s.Collaborators.Create(ctx, owner); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) List(ctx context.Context, userID int64, limit, offset int) (*types.ListNotesResponse, error) {
	notes, total, err := s.Notes.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.ListNotesResponse{
		Notes: make([]*types.NoteInfo, 0, len(notes)),
		Total: total,
	}
	for _, note := range notes {
		resp.Notes = append(resp.Notes, types.ToNoteInfo(note))
	}
	return resp, nil
}

// Update 先落审计记录再改笔记，缓存键随更新失效
func (s *NoteService) Update(ctx context.Context, note *models.Note, editorID int64, req *types.UpdateNoteRequest) (*models.Note, error) {
	updates := map[string]any{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, response.Validation("Title cannot be empty")
		}
		if strutil.ContainsRestrictedWord(title) {
			return nil, response.Validation("Title contains restricted words")
		}
		updates["title"] = title
	}

	if req.Content != nil {
		updates["content"] = *req.Content
	}

	if req.CategoryName != nil {
		updates["category_name"] = strings.TrimSpace(*req.CategoryName)
	}

	if req.Tags != nil {
		data, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, response.Validation("Invalid tags")
		}
		updates["tags"] = data
	}

	if err := s.applySelfDestroy(req, updates); err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return note, nil
	}

	history := &models.NoteHistory{
		ID:          snowflake.GenID(),
		NoteID:      note.ID,
		EditorID:    editorID,
		PrevTitle:   note.Title,
		PrevContent: note.Content,
		CreatedAt:   time.Now(),
	}
	if err := s.Histories.Create(ctx, history); err != nil {
		return nil, err
	}

	updates["updated_at"] = time.Now()
	if err := s.Notes.UpdateById(ctx, note.ID, updates); err != nil {
		return nil, err
	}

	return s.Notes.FindById(ctx, note.ID)
}

// 自毁定时：打开开关必须携带可解析的时长字面量
func (s *NoteService) applySelfDestroy(req *types.UpdateNoteRequest, updates map[string]any) error {
	wantsDestroy := req.WillSelfDestroy != nil && *req.WillSelfDestroy

	if req.SelfDestroyTime != nil && !wantsDestroy {
		return response.Validation("Enter a time for note deletion")
	}

	if wantsDestroy {
		if req.SelfDestroyTime == nil {
			return response.Validation("Enter a time for note deletion")
		}
		at, ok := strutil.ParseLiteralTime(time.Now(), *req.SelfDestroyTime)
		if !ok {
			return response.Validation("Enter a time for note deletion")
		}
		updates["will_self_destroy"] = true
		updates["self_destroy_time"] = at
		return nil
	}

	if req.WillSelfDestroy != nil {
		updates["will_self_destroy"] = false
		updates["self_destroy_time"] = nil
	}
	return nil
}

// Delete 幂等删除：笔记已不存在也返回成功，删除与清扫竞态不报错
func (s *NoteService) Delete(ctx context.Context, noteID, requesterID int64) error {
	note, err := s.Notes.FindById(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if note.OwnerID != requesterID {
		return response.Unauthorized("Only the note owner can do this")
	}
	return s.deleteCascade(ctx, noteID)
}

// deleteCascade 级联清理协作、日程与审计记录
func (s *NoteService) deleteCascade(ctx context.Context, noteID int64) error {
	if err := s.Collaborators.DeleteByNote(ctx, noteID); err != nil {
		return err
	}

	taskIDs, err := s.Tasks.DeleteByNote(ctx, noteID)
	if err != nil {
		return err
	}
	if err := s.Participants.DeleteByTaskIDs(ctx, taskIDs); err != nil {
		return err
	}

	if err := s.Histories.DeleteByNote(ctx, noteID); err != nil {
		return err
	}

	return s.Notes.DeleteById(ctx, noteID)
}

func (s *NoteService) History(ctx context.Context, noteID int64, limit, offset int) (*types.NoteHistoryResponse, error) {
	rows, total, err := s.Histories.FindByNote(ctx, noteID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &types.NoteHistoryResponse{
		Entries: make([]*types.NoteHistoryEntry, 0, len(rows)),
		Total:   total,
	}
	for _, row := range rows {
		resp.Entries = append(resp.Entries, &types.NoteHistoryEntry{
			ID:          row.ID,
			EditorID:    row.EditorID,
			PrevTitle:   row.PrevTitle,
			PrevContent: row.PrevContent,
			CreatedAt:   row.CreatedAt,
		})
	}
	return resp, nil
}

// SweepExpired 自毁清理，单条失败跳过不中断
func (s *NoteService) SweepExpired(ctx context.Context, now time.Time) int {
	ids, err := s.Notes.ExpiredIDs(ctx, now)
	if err != nil {
		log.L.Error("sweep query error", zap.Error(err))
		return 0
	}

	swept := 0
	for _, id := range ids {
		if err := s.deleteCascade(ctx, id); err != nil {
			log.L.Error("sweep delete error", zap.Int64("note_id", id), zap.Error(err))
			continue
		}
		swept++
	}

	if swept > 0 {
		log.L.Info("swept self-destruct notes", zap.Int("count", swept))
	}
	return swept
}
