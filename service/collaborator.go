package service

import (
	"context"
	"errors"
	"time"

	"notalx/models"
	"notalx/pkg/response"
	"notalx/pkg/snowflake"
	"notalx/types"

	"gorm.io/gorm"
)

var _ ICollaboratorService = (*CollaboratorService)(nil)

type ICollaboratorService interface {
	List(ctx context.Context, note *models.Note) (*types.ListCollaboratorsResponse, error)
	Add(ctx context.Context, note *models.Note, userID int64, permission string) error
	UpdatePermission(ctx context.Context, note *models.Note, userID int64, permission string) error
	Remove(ctx context.Context, note *models.Note, userID int64) error
}

type userReader interface {
	FindById(ctx context.Context, id int64) (*models.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error)
}

type collaboratorStore interface {
	FindByNote(ctx context.Context, noteID int64) ([]*models.Collaborator, error)
	FindByNoteAndUser(ctx context.Context, noteID, userID int64) (*models.Collaborator, error)
	Create(ctx context.Context, value *models.Collaborator) error
	UpdatePermission(ctx context.Context, noteID, userID int64, permission string) error
	DeleteByNoteAndUser(ctx context.Context, noteID, userID int64) (int64, error)
}

type CollaboratorService struct {
	Users         userReader
	Collaborators collaboratorStore
	Dispatcher    *Dispatcher
}

// List 所有者始终出现在列表中并持有 write 权限，
// 历史数据缺少所有者记录时在这里合成
func (s *CollaboratorService) List(ctx context.Context, note *models.Note) (*types.ListCollaboratorsResponse, error) {
	rows, err := s.Collaborators.FindByNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(rows)+1)
	ownerListed := false
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
		if row.UserID == note.OwnerID {
			ownerListed = true
		}
	}
	if !ownerListed {
		userIDs = append(userIDs, note.OwnerID)
	}

	users, err := s.Users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	resp := &types.ListCollaboratorsResponse{
		Collaborators: make([]*types.CollaboratorInfo, 0, len(userIDs)),
	}
	for _, row := range rows {
		info := &types.CollaboratorInfo{
			UserID:     row.UserID,
			Name:       names[row.UserID],
			Permission: row.Permission,
			IsOwner:    row.UserID == note.OwnerID,
			AddedAt:    row.CreatedAt,
		}
		if info.IsOwner {
			info.Permission = models.PermissionWrite
		}
		resp.Collaborators = append(resp.Collaborators, info)
	}
	if !ownerListed {
		resp.Collaborators = append(resp.Collaborators, &types.CollaboratorInfo{
			UserID:     note.OwnerID,
			Name:       names[note.OwnerID],
			Permission: models.PermissionWrite,
			IsOwner:    true,
			AddedAt:    note.CreatedAt,
		})
	}

	return resp, nil
}

// Add 邀请协作者并通知对方
func (s *CollaboratorService) Add(ctx context.Context, note *models.Note, userID int64, permission string) error {
	if models.PermissionRank(permission) < 0 {
		return response.Validation("Permission must be read or write")
	}
	if userID == note.OwnerID {
		return response.Validation("The owner is already a collaborator")
	}

	if _, err := s.Users.FindById(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("User not found")
		}
		return err
	}

	if _, err := s.Collaborators.FindByNoteAndUser(ctx, note.ID, userID); err == nil {
		return response.Conflict("User is already a collaborator on this note")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := &models.Collaborator{
		ID:         snowflake.GenID(),
		NoteID:     note.ID,
		UserID:     userID,
		Permission: permission,
		CreatedAt:  time.Now(),
	}
	if err := s.Collaborators.Create(ctx, row); err != nil {
		return err
	}

	s.Dispatcher.Dispatch(
		models.NotificationNoteShared,
		"A note was shared with you",
		"You were given "+permission+" access to \""+note.Title+"\".",
		map[string]any{"note_id": note.ID},
		[]int64{userID},
	)

	return nil
}

// UpdatePermission 单行就地改级，write 隐含 read 由等级比较表达
func (s *CollaboratorService) UpdatePermission(ctx context.Context, note *models.Note, userID int64, permission string) error {
	if models.PermissionRank(permission) < 0 {
		return response.Validation("Permission must be read or write")
	}
	if userID == note.OwnerID {
		return response.Validation("The owner's permission cannot be changed")
	}

	if _, err := s.Collaborators.FindByNoteAndUser(ctx, note.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("User is not a collaborator on this note")
		}
		return err
	}

	return s.Collaborators.UpdatePermission(ctx, note.ID, userID, permission)
}

// Remove 所有者记录不可经由协作者删除路径移除。
// 幂等：本来就不是协作者也返回成功，但不发通知
func (s *CollaboratorService) Remove(ctx context.Context, note *models.Note, userID int64) error {
	if userID == note.OwnerID {
		return response.Forbidden("The owner cannot be removed from their own note")
	}

	affected, err := s.Collaborators.DeleteByNoteAndUser(ctx, note.ID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	s.Dispatcher.Dispatch(
		models.NotificationCollaboratorRemoved,
		"Access removed",
		"Your access to \""+note.Title+"\" was removed.",
		map[string]any{"note_id": note.ID},
		[]int64{userID},
	)

	return nil
}
