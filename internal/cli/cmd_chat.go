package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"terminally-dating/app/internal/ui"
	"terminally-dating/app/pkg/di"
)

var chatCmd = &cobra.Command{
	Use:   "chat <me> <partner>",
	Short: "Open a chat session with another user",
	Long: `Opens the two-party chat loop. Each line you type is sent to the
partner. Commands: /refresh reloads history from storage, /quit leaves.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}
		return runChatLoop(c, args[0], args[1])
	},
}

// runChatLoop renders the transcript and reads input lines until /quit.
func runChatLoop(c *di.Container, me, partner string) error {
	// Both participants must exist before a pair key makes sense.
	if _, err := c.UserService.GetByUsername(me); err != nil {
		return err
	}
	if _, err := c.UserService.GetByUsername(partner); err != nil {
		return err
	}

	session, err := c.ChatService.Open(me, partner)
	if err != nil {
		return err
	}

	width, height := ui.TerminalSize()

	for {
		clearScreen()
		fmt.Print(ui.RenderChat(session.Transcript(), session.LocalUser, session.Partner, width, height))

		line := prompt("")
		switch line {
		case "/quit", "/q":
			return nil
		case "/refresh", "/r":
			if err := session.Refresh(); err != nil {
				fmt.Println("Warning: could not refresh history:", err)
				prompt("(press Enter to continue) ")
			}
		case "":
			// Re-render; an empty line is also the cheap refresh.
		default:
			session.Send(line)
			if warn := session.LastWarning(); warn != "" {
				fmt.Println("Warning:", warn)
				prompt("(press Enter to continue) ")
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
