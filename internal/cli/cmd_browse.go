package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"terminally-dating/app/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <username>",
	Short: "Browse profiles with arrow-key navigation",
	Long: `Starts the explore loop on your own profile. Right/left step through
profiles, up edits your own profile or opens chat on someone else's, q quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		me, err := c.UserService.GetByUsername(args[0])
		if err != nil {
			return err
		}

		current := me
		width, _ := ui.TerminalSize()

		for {
			clearScreen()
			fmt.Print(ui.RenderProfile(current, me.Username, width))

			key, err := ui.ReadKey()
			if err != nil {
				return err
			}

			switch key {
			case ui.KeyQuit:
				return nil
			case ui.KeyRight:
				next, err := c.UserService.NextProfile(current)
				if err != nil {
					return err
				}
				current = next
			case ui.KeyLeft:
				if current.Username == me.Username {
					prev, err := c.UserService.PrevProfile(current)
					if err != nil {
						return err
					}
					current = prev
				} else {
					// Back to my own profile from anyone else's.
					current = me
				}
			case ui.KeyUp:
				if current.Username == me.Username {
					if err := runEditor(c, me.Username); err != nil {
						return err
					}
					// Reload by ID in case the username changed.
					reloaded, err := c.UserService.GetByID(me.ID)
					if err != nil {
						return err
					}
					me, current = reloaded, reloaded
				} else {
					if err := runChatLoop(c, me.Username, current.Username); err != nil {
						return err
					}
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
