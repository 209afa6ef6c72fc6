package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"terminally-dating/app/user/models"
)

// EditorField is one editable profile attribute.
type EditorField struct {
	Key   string
	Label string
	Value string
}

// EditorAction is what the caller should do after a keypress.
type EditorAction int

const (
	// ActionNone means the editor only moved its selection.
	ActionNone EditorAction = iota
	// ActionEdit means the caller should collect a new value for the
	// selected field and pass it to SetValue.
	ActionEdit
	// ActionSave means the user chose save-and-exit.
	ActionSave
)

// Editor is the field-selection loop over the editable profile attributes.
// It is a pure state machine: the caller feeds it keys and renders View,
// and persists the result through the user service when it signals save.
type Editor struct {
	username string
	fields   []EditorField
	selected int
}

// NewEditor builds an editor seeded from the profile's current values.
func NewEditor(profile *models.User) *Editor {
	return &Editor{
		username: profile.Username,
		fields: []EditorField{
			{Key: "username", Label: "Username", Value: profile.Username},
			{Key: "name_font", Label: "Name Font", Value: profile.NameFont},
			{Key: "bio", Label: "Bio", Value: profile.Bio},
			{Key: "profile_link", Label: "Link", Value: profile.ProfileLink},
			{Key: "picture_path", Label: "Picture Path", Value: profile.PicturePath},
		},
	}
}

// Apply advances the state machine by one keypress. Up/Down wrap around the
// field list, Enter requests an edit of the selected field, q saves.
func (e *Editor) Apply(k Key) EditorAction {
	switch k {
	case KeyDown:
		e.selected = (e.selected + 1) % len(e.fields)
	case KeyUp:
		e.selected = (e.selected - 1 + len(e.fields)) % len(e.fields)
	case KeyEnter:
		return ActionEdit
	case KeyQuit:
		return ActionSave
	}
	return ActionNone
}

// Selected returns the currently highlighted field.
func (e *Editor) Selected() EditorField {
	return e.fields[e.selected]
}

// SetValue replaces the selected field's value. Blank input leaves the
// field unchanged, matching the prototype's edit flow.
func (e *Editor) SetValue(value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	e.fields[e.selected].Value = value
	if e.fields[e.selected].Key == "username" {
		// Keep the preview banner in sync with a renamed user.
		e.username = value
	}
}

// Fields returns a copy of the current field state.
func (e *Editor) Fields() []EditorField {
	out := make([]EditorField, len(e.fields))
	copy(out, e.fields)
	return out
}

// Update converts the editor state into a persistable profile update.
func (e *Editor) Update() *models.ProfileUpdate {
	update := &models.ProfileUpdate{}
	for _, f := range e.fields {
		v := f.Value
		switch f.Key {
		case "username":
			update.Username = &v
		case "name_font":
			update.NameFont = &v
		case "bio":
			update.Bio = &v
		case "profile_link":
			update.ProfileLink = &v
		case "picture_path":
			update.PicturePath = &v
		}
	}
	return update
}

// View renders the editor screen.
func (e *Editor) View(width int) string {
	var b strings.Builder

	b.WriteString("\n" + borderStyle.Render(strings.Repeat("\\", width)) + "\n\n")
	b.WriteString(sectionLabelStyle.Render("Edit Profile") + "\n\n")

	for i, f := range e.fields {
		value := f.Value
		if r := []rune(value); len(r) > 60 {
			value = string(r[:57]) + "..."
		}

		if i == e.selected {
			b.WriteString(selectedStyle.Render(">") + " ")
		} else {
			b.WriteString("   ")
		}
		b.WriteString(fieldLabelStyle.Render(f.Label+":") + " " + fieldValueStyle.Render(value) + "\n")

		// Live banner preview while the font field is highlighted.
		if f.Key == "name_font" && i == e.selected {
			preview := RenderNameBanner(e.username, f.Value)
			b.WriteString("      " + lipgloss.NewStyle().MaxWidth(width-10).Render(preview) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(ruleStyle.Render(strings.Repeat("/", width)) + "\n\n")
	b.WriteString(hintStyle.Render("[↑/↓] Navigate  [Enter] Edit  [q] Save & Exit") + "\n")

	return b.String()
}
