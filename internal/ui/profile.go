package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"terminally-dating/app/user/models"
)

const picturePaneWidth = 40

// NameFonts are the display treatments a user can pick for the large name
// banner. The prototype shipped a figlet font list; these are the lipgloss
// equivalents.
var NameFonts = map[string]struct{}{
	"block":  {},
	"wide":   {},
	"narrow": {},
	"shout":  {},
}

// RenderNameBanner renders the username as large stylized text. An unknown
// font renders the plain name plus a visible placeholder instead of failing.
func RenderNameBanner(name, font string) string {
	switch font {
	case "block":
		return nameStyle.Render(spaceOut(strings.ToUpper(name), 1))
	case "wide":
		return nameStyle.Render(spaceOut(strings.ToUpper(name), 2))
	case "narrow":
		return nameStyle.Render(strings.ToUpper(name))
	case "shout":
		return nameStyle.Render(spaceOut(strings.ToUpper(name), 1) + " !!")
	default:
		return nameStyle.Render(name) + " " + placeholderStyle.Render("(invalid font)")
	}
}

func spaceOut(s string, gap int) string {
	sep := strings.Repeat(" ", gap)
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// loadPicture reads the pre-rendered text-art picture from disk. A missing
// or unreadable file becomes a visible placeholder pane.
func loadPicture(path string) string {
	if path == "" {
		return placeholderStyle.Render("(no picture)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return placeholderStyle.Render("(picture unavailable)")
	}
	return strings.TrimRight(string(data), "\n")
}

// RenderProfile formats a profile for the terminal: large stylized name next
// to the picture pane, a half-width wrapped bio, the profile link pushed to
// the right edge, and navigation hints that depend on whether the viewer is
// looking at their own profile.
func RenderProfile(profile *models.User, viewer string, width int) string {
	var b strings.Builder

	border := borderStyle.Render(strings.Repeat("\\", width))
	rule := ruleStyle.Render(strings.Repeat("/", width))

	b.WriteString("\n" + border + "\n\n")

	// Name banner beside the picture pane; a narrow terminal stacks them.
	nameBlock := RenderNameBanner(profile.Username, profile.NameFont) + "\n" +
		bioStyle.Render(fmt.Sprintf("%d · %s", profile.Age, profile.Location))
	picture := loadPicture(profile.PicturePath)

	if width > picturePaneWidth*2 {
		nameCol := lipgloss.NewStyle().Width(width - picturePaneWidth).Render(nameBlock)
		picCol := lipgloss.NewStyle().Width(picturePaneWidth).Render(picture)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, nameCol, picCol))
	} else {
		b.WriteString(nameBlock + "\n\n" + picture)
	}
	b.WriteString("\n\n" + rule + "\n\n")

	// Bio, wrapped to half the render width.
	b.WriteString(sectionLabelStyle.Render("About me:") + "\n\n")
	for _, line := range WrapToBudget(profile.Bio, HalfWidth(width)) {
		b.WriteString(bioStyle.Render(line) + "\n")
	}

	// Link, right-aligned.
	if profile.ProfileLink != "" {
		link := linkStyle.Render("⚡ LINK: " + profile.ProfileLink)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, link) + "\n")
	}

	b.WriteString("\n" + renderNavHints(profile.Username == viewer, width) + "\n")
	b.WriteString("\n" + border + "\n")

	return b.String()
}

// renderNavHints shows the arrow-key actions for the current view. The set
// differs between looking at your own profile and someone else's.
func renderNavHints(ownProfile bool, width int) string {
	var hints []string
	if ownProfile {
		hints = []string{"[<-] Chat", "[^] Edit", "[->] Explore"}
	} else {
		hints = []string{"[<-] My profile", "[^] Chat", "[->] Next"}
	}

	joined := hintStyle.Render(strings.Join(hints, "      "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, joined)
}
