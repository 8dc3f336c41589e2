package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"notalx/models"
	"notalx/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserReader struct {
	users map[int64]*models.User
}

func (f *fakeUserReader) FindById(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserReader) FindByIDs(_ context.Context, ids []int64) ([]*models.User, error) {
	out := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeCollabStore struct {
	rows []*models.Collaborator
}

func (f *fakeCollabStore) FindByNote(_ context.Context, noteID int64) ([]*models.Collaborator, error) {
	var out []*models.Collaborator
	for _, row := range f.rows {
		if row.NoteID == noteID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeCollabStore) FindByNoteAndUser(_ context.Context, noteID, userID int64) (*models.Collaborator, error) {
	for _, row := range f.rows {
		if row.NoteID == noteID && row.UserID == userID {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCollabStore) Create(_ context.Context, value *models.Collaborator) error {
	f.rows = append(f.rows, value)
	return nil
}

func (f *fakeCollabStore) UpdatePermission(_ context.Context, noteID, userID int64, permission string) error {
	for _, row := range f.rows {
		if row.NoteID == noteID && row.UserID == userID {
			row.Permission = permission
		}
	}
	return nil
}

func (f *fakeCollabStore) DeleteByNoteAndUser(_ context.Context, noteID, userID int64) (int64, error) {
	kept := f.rows[:0]
	var affected int64
	for _, row := range f.rows {
		if row.NoteID == noteID && row.UserID == userID {
			affected++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return affected, nil
}

func newCollabFixture(users map[int64]*models.User, rows []*models.Collaborator) (*CollaboratorService, *fakeCollabStore, *fakeNotificationStore) {
	store := &fakeCollabStore{rows: rows}
	notices := &fakeNotificationStore{}
	svc := &CollaboratorService{
		Users:         &fakeUserReader{users: users},
		Collaborators: store,
		Dispatcher:    newDispatcher(notices),
	}
	return svc, store, notices
}

func TestListSynthesizesOwnerWithWrite(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1, CreatedAt: time.Now()}
	users := map[int64]*models.User{
		1: {ID: 1, Name: "owner"},
		2: {ID: 2, Name: "bob"},
	}
	// 历史数据：没有所有者的协作记录
	svc, _, _ := newCollabFixture(users, []*models.Collaborator{
		{ID: 100, NoteID: 10, UserID: 2, Permission: models.PermissionRead},
	})

	resp, err := svc.List(context.Background(), note)
	require.NoError(t, err)
	require.Len(t, resp.Collaborators, 2)

	found := false
	for _, info := range resp.Collaborators {
		if info.UserID == note.OwnerID {
			found = true
			assert.True(t, info.IsOwner)
			assert.Equal(t, models.PermissionWrite, info.Permission)
			assert.Equal(t, "owner", info.Name)
		}
	}
	assert.True(t, found)
}

func TestListForcesOwnerRowToWrite(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1}
	users := map[int64]*models.User{1: {ID: 1, Name: "owner"}}
	// 脏数据：所有者记录被降成 read，列表仍展示 write
	svc, _, _ := newCollabFixture(users, []*models.Collaborator{
		{ID: 101, NoteID: 10, UserID: 1, Permission: models.PermissionRead},
	})

	resp, err := svc.List(context.Background(), note)
	require.NoError(t, err)
	require.Len(t, resp.Collaborators, 1)
	assert.True(t, resp.Collaborators[0].IsOwner)
	assert.Equal(t, models.PermissionWrite, resp.Collaborators[0].Permission)
}

func TestRemoveOwnerForbidden(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1}
	svc, store, notices := newCollabFixture(nil, []*models.Collaborator{
		{ID: 101, NoteID: 10, UserID: 1, Permission: models.PermissionWrite},
	})

	err := svc.Remove(context.Background(), note, note.OwnerID)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusForbidden, be.Code)

	// 记录还在，也没有任何通知
	assert.Len(t, store.rows, 1)
	svc.Dispatcher.Close()
	assert.Empty(t, notices.rows)
}

func TestRemoveNonCollaboratorSilently(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1}
	svc, _, notices := newCollabFixture(nil, nil)

	// 本来就不是协作者：成功返回，但不给对方发 "移除" 通知
	err := svc.Remove(context.Background(), note, 99)
	require.NoError(t, err)

	svc.Dispatcher.Close()
	assert.Empty(t, notices.rows)
}

func TestRemoveCollaboratorNotifies(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1, Title: "plans"}
	svc, store, notices := newCollabFixture(nil, []*models.Collaborator{
		{ID: 102, NoteID: 10, UserID: 2, Permission: models.PermissionRead},
	})

	err := svc.Remove(context.Background(), note, 2)
	require.NoError(t, err)
	assert.Empty(t, store.rows)

	svc.Dispatcher.Close()
	require.Len(t, notices.rows, 1)
	assert.Equal(t, models.NotificationCollaboratorRemoved, notices.rows[0].Type)
	assert.Equal(t, int64(2), notices.rows[0].UserID)
}

func TestAddOwnerRejected(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1}
	svc, _, _ := newCollabFixture(map[int64]*models.User{1: {ID: 1}}, nil)

	err := svc.Add(context.Background(), note, note.OwnerID, models.PermissionRead)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)
}

func TestAddDuplicateConflict(t *testing.T) {
	note := &models.Note{ID: 10, OwnerID: 1}
	users := map[int64]*models.User{2: {ID: 2, Name: "bob"}}
	svc, _, _ := newCollabFixture(users, []*models.Collaborator{
		{ID: 103, NoteID: 10, UserID: 2, Permission: models.PermissionRead},
	})

	err := svc.Add(context.Background(), note, 2, models.PermissionWrite)

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusConflict, be.Code)
}
