package strutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		literal string
		want    time.Time
		ok      bool
	}{
		{"2 seconds", now.Add(2 * time.Second), true},
		{"1 second", now.Add(time.Second), true},
		{"15 minutes", now.Add(15 * time.Minute), true},
		{"3 hours", now.Add(3 * time.Hour), true},
		{"2 days", now.AddDate(0, 0, 2), true},
		{"1 year", now.AddDate(1, 0, 0), true},
		{"10minutes", now.Add(10 * time.Minute), true},
		{"  2 Hours  ", now.Add(2 * time.Hour), true},
		{"2 fortnights", time.Time{}, false},
		{"minutes", time.Time{}, false},
		{"-2 hours", time.Time{}, false},
		{"2.5 hours", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, ok := ParseLiteralTime(now, tt.literal)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsLiteralTime(t *testing.T) {
	assert.True(t, IsLiteralTime("45 minutes"))
	assert.True(t, IsLiteralTime("1 hour"))
	assert.False(t, IsLiteralTime("soon"))
	assert.False(t, IsLiteralTime("45 lightyears"))
}

func TestRandomCode(t *testing.T) {
	code := RandomCode(6)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	// 连续生成不应全部相同
	same := true
	for i := 0; i < 10; i++ {
		if RandomCode(6) != code {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestIsValidUserName(t *testing.T) {
	assert.True(t, IsValidUserName("alice_01"))
	assert.True(t, IsValidUserName("bob-the-builder"))
	assert.False(t, IsValidUserName("ab"))
	assert.False(t, IsValidUserName("Alice"))
	assert.False(t, IsValidUserName("has space"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not an email"))
}

func TestContainsRestrictedWord(t *testing.T) {
	assert.True(t, ContainsRestrictedWord("this is Shit"))
	assert.False(t, ContainsRestrictedWord("weekly planning"))
}
