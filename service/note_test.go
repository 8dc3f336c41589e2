package service

import (
	"testing"
	"time"

	"notalx/types"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestApplySelfDestroy(t *testing.T) {
	s := &NoteService{}

	t.Run("enable with literal time", func(t *testing.T) {
		updates := map[string]any{}
		err := s.applySelfDestroy(&types.UpdateNoteRequest{
			WillSelfDestroy: boolp(true),
			SelfDestroyTime: strp("2 hours"),
		}, updates)
		assert.NoError(t, err)
		assert.Equal(t, true, updates["will_self_destroy"])

		at, ok := updates["self_destroy_time"].(time.Time)
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), at, time.Minute)
	})

	t.Run("time without flag rejected", func(t *testing.T) {
		err := s.applySelfDestroy(&types.UpdateNoteRequest{
			SelfDestroyTime: strp("2 hours"),
		}, map[string]any{})
		assert.Error(t, err)
	})

	t.Run("flag without time rejected", func(t *testing.T) {
		err := s.applySelfDestroy(&types.UpdateNoteRequest{
			WillSelfDestroy: boolp(true),
		}, map[string]any{})
		assert.Error(t, err)
	})

	t.Run("unparseable literal rejected", func(t *testing.T) {
		err := s.applySelfDestroy(&types.UpdateNoteRequest{
			WillSelfDestroy: boolp(true),
			SelfDestroyTime: strp("2 fortnights"),
		}, map[string]any{})
		assert.Error(t, err)
	})

	t.Run("disable clears the timer", func(t *testing.T) {
		updates := map[string]any{}
		err := s.applySelfDestroy(&types.UpdateNoteRequest{
			WillSelfDestroy: boolp(false),
		}, updates)
		assert.NoError(t, err)
		assert.Equal(t, false, updates["will_self_destroy"])
		assert.Nil(t, updates["self_destroy_time"])
	})

	t.Run("untouched request changes nothing", func(t *testing.T) {
		updates := map[string]any{}
		err := s.applySelfDestroy(&types.UpdateNoteRequest{}, updates)
		assert.NoError(t, err)
		assert.Empty(t, updates)
	})
}
