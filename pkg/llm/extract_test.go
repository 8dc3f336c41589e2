package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	raw := `{"success":true,"tasks":[
		{"task_title":"Meeting with Sarah","date":"2026-03-02","time":"14:00","participants":["Sarah"],"location":"office"},
		{"task_title":"Dentist","date":"","time":"","participants":[],"location":""}
	]}`

	tasks, ok, err := ParseExtraction(raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, tasks, 2)

	assert.Equal(t, "Meeting with Sarah", tasks[0].Title)
	assert.Equal(t, "2026-03-02", tasks[0].Date)
	assert.Equal(t, "14:00", tasks[0].Time)
	assert.Equal(t, []string{"Sarah"}, tasks[0].Participants)
	assert.Equal(t, "office", tasks[0].Location)

	assert.Equal(t, "Dentist", tasks[1].Title)
	assert.Empty(t, tasks[1].Date)
	assert.Empty(t, tasks[1].Participants)
}

func TestParseExtraction_Unschedulable(t *testing.T) {
	tasks, ok, err := ParseExtraction(`{"success":false,"tasks":[]}`)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, tasks)
}

func TestParseExtraction_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"success\":true,\"tasks\":[{\"task_title\":\"Standup\",\"date\":\"2026-03-02\",\"time\":\"09:00\",\"participants\":[],\"location\":\"\"}]}\n```"

	tasks, ok, err := ParseExtraction(raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Standup", tasks[0].Title)
}

func TestParseExtraction_InvalidJSON(t *testing.T) {
	_, _, err := ParseExtraction("sorry, I cannot do that")
	assert.Error(t, err)
}

func TestParseExtraction_SkipsUntitled(t *testing.T) {
	raw := `{"success":true,"tasks":[{"task_title":"  ","date":"2026-03-02"},{"task_title":"Review","date":""}]}`

	tasks, ok, err := ParseExtraction(raw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Review", tasks[0].Title)
}
