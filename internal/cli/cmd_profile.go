package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"terminally-dating/app/internal/ui"
	"terminally-dating/app/pkg/di"
)

var profileViewer string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit profiles",
}

var profileViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "Render a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		profile, err := c.UserService.GetByUsername(args[0])
		if err != nil {
			return err
		}

		viewer := profileViewer
		if viewer == "" {
			viewer = profile.Username
		}

		width, _ := ui.TerminalSize()
		fmt.Print(ui.RenderProfile(profile, viewer, width))
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit <username>",
	Short: "Interactively edit a profile and save it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		return runEditor(c, args[0])
	},
}

// runEditor drives the field-selection loop and persists the result through
// the user service on save-and-exit.
func runEditor(c *di.Container, username string) error {
	profile, err := c.UserService.GetByUsername(username)
	if err != nil {
		return err
	}

	editor := ui.NewEditor(profile)
	width, _ := ui.TerminalSize()

	for {
		clearScreen()
		fmt.Print(editor.View(width))

		key, err := ui.ReadKey()
		if err != nil {
			return err
		}

		switch editor.Apply(key) {
		case ui.ActionEdit:
			field := editor.Selected()
			clearScreen()
			fmt.Printf("Edit %s\nCurrent: %s\n", field.Label, field.Value)
			editor.SetValue(prompt("New value: "))
		case ui.ActionSave:
			saved, err := c.UserService.SaveProfile(username, editor.Update())
			if err != nil {
				return err
			}
			clearScreen()
			fmt.Print(ui.RenderProfile(saved, saved.Username, width))
			fmt.Println("Profile saved.")
			return nil
		}
	}
}

func init() {
	profileViewCmd.Flags().StringVar(&profileViewer, "as", "", "username of the viewing user")
	profileCmd.AddCommand(profileViewCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
