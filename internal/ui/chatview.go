package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"terminally-dating/app/chat/models"
)

// RenderChat formats a transcript for the terminal. The local user's
// messages are right-aligned, the partner's left-aligned; each message is
// wrapped to half the render width with the HH:MM timestamp on its first
// line. Only the most recent messages that fit the height budget are shown.
func RenderChat(transcript []models.Message, localUser, partner string, width, height int) string {
	var b strings.Builder

	b.WriteString(borderStyle.Render(strings.Repeat("/", width)) + "\n")
	header := nameStyle.Render("Chatting with: " + partner)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header) + "\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("_", width)) + "\n\n")

	// Reserve space for header and input prompt.
	budget := height - 8
	if budget < 1 {
		budget = 1
	}

	for _, msg := range fitToHeight(transcript, width, budget) {
		if msg.Sender == localUser {
			b.WriteString(renderLocalMessage(&msg, width))
		} else {
			b.WriteString(renderRemoteMessage(&msg, width))
		}
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render("Type your message:") + " ")
	return b.String()
}

// fitToHeight walks the transcript backwards until the rendered line count
// would exceed the budget, then returns the suffix that fits.
func fitToHeight(transcript []models.Message, width, budget int) []models.Message {
	half := HalfWidth(width)
	used := 0
	start := len(transcript)

	for i := len(transcript) - 1; i >= 0; i-- {
		lines := len(WrapToBudget(transcript[i].Body, half)) + 1 // +1 blank separator
		if used+lines > budget {
			break
		}
		used += lines
		start = i
	}

	return transcript[start:]
}

func renderLocalMessage(msg *models.Message, width int) string {
	var b strings.Builder
	lines := WrapToBudget(msg.Body, HalfWidth(width))

	for i, line := range lines {
		var rendered string
		if i == 0 {
			rendered = localTimeStyle.Render(msg.Clock()) + "  " + localMsgStyle.Render(line)
		} else {
			rendered = localMsgStyle.Render(line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, rendered) + "\n")
	}
	return b.String()
}

func renderRemoteMessage(msg *models.Message, width int) string {
	var b strings.Builder
	lines := WrapToBudget(msg.Body, HalfWidth(width))

	for i, line := range lines {
		if i == 0 {
			b.WriteString("  " + remoteTimeStyle.Render(msg.Clock()) + "  " + remoteMsgStyle.Render(line) + "\n")
		} else {
			b.WriteString("        " + remoteMsgStyle.Render(line) + "\n")
		}
	}
	return b.String()
}
