package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminally-dating/app/chat/models"
)

func sampleTranscript() []models.Message {
	at := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	return []models.Message{
		{Sender: "alice", Receiver: "bob", Body: "hey bob", SentAt: at},
		{Sender: "bob", Receiver: "alice", Body: "hey alice", SentAt: at.Add(time.Minute)},
	}
}

func TestRenderChatShowsBothSides(t *testing.T) {
	out := RenderChat(sampleTranscript(), "alice", "bob", 80, 30)

	assert.Contains(t, out, "Chatting with: bob")
	assert.Contains(t, out, "hey bob")
	assert.Contains(t, out, "hey alice")
	assert.Contains(t, out, "14:30")
	assert.Contains(t, out, "14:31")
}

func TestRenderChatAlignment(t *testing.T) {
	out := RenderChat(sampleTranscript(), "alice", "bob", 80, 30)

	var localLine, remoteLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "hey bob") {
			localLine = line
		}
		if strings.Contains(line, "hey alice") {
			remoteLine = line
		}
	}
	require.NotEmpty(t, localLine)
	require.NotEmpty(t, remoteLine)

	assert.True(t, strings.HasPrefix(localLine, " "),
		"local message is pushed toward the right edge")
	assert.Greater(t, strings.Index(localLine, "hey bob"), 40)
	assert.Less(t, strings.Index(remoteLine, "hey alice"), 10,
		"remote message stays on the left")
}

func TestRenderChatWrapsLongMessages(t *testing.T) {
	long := strings.Repeat("word ", 30)
	transcript := []models.Message{
		{Sender: "bob", Receiver: "alice", Body: strings.TrimSpace(long), SentAt: time.Now()},
	}

	out := RenderChat(transcript, "alice", "bob", 60, 40)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "word") {
			// Indent plus a wrapped chunk never exceeds the full width.
			assert.LessOrEqual(t, len(line), 60)
		}
	}
}

func TestRenderChatHeightBudget(t *testing.T) {
	var transcript []models.Message
	base := time.Now()
	for i := 0; i < 50; i++ {
		transcript = append(transcript, models.Message{
			Sender: "bob", Receiver: "alice",
			Body:   "msg",
			SentAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	out := RenderChat(transcript, "alice", "bob", 80, 20)
	count := strings.Count(out, "msg")
	assert.Less(t, count, 50, "old messages scroll out of a short terminal")
	assert.Greater(t, count, 0)
}
