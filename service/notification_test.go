package service

import (
	"context"
	"sync"
	"testing"

	"notalx/models"

	"github.com/stretchr/testify/assert"
)

type fakeNotificationStore struct {
	mu   sync.Mutex
	rows []*models.Notification
}

func (f *fakeNotificationStore) Create(_ context.Context, value *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, value)
	return nil
}

func TestDispatcherFanOut(t *testing.T) {
	store := &fakeNotificationStore{}
	d := newDispatcher(store)

	recipients := []int64{101, 102, 103}
	d.Dispatch(models.NotificationNoteShared, "Note shared", "alice shared a note with you",
		map[string]any{"note_id": int64(7)}, recipients)
	d.Close()

	assert.Len(t, store.rows, len(recipients))

	seen := map[int64]bool{}
	for _, row := range store.rows {
		seen[row.UserID] = true
		assert.Equal(t, models.NotificationNoteShared, row.Type)
		assert.Equal(t, "Note shared", row.Title)
		assert.False(t, row.IsRead)
		assert.NotZero(t, row.ID)
		assert.NotEmpty(t, row.Metadata)
	}
	for _, uid := range recipients {
		assert.True(t, seen[uid])
	}
}

func TestDispatcherNoRecipients(t *testing.T) {
	store := &fakeNotificationStore{}
	d := newDispatcher(store)

	d.Dispatch(models.NotificationWelcome, "Welcome", "hello", nil, nil)
	d.Close()

	assert.Empty(t, store.rows)
}
