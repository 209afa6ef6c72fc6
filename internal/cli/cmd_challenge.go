package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Run a paired code challenge",
}

var challengeStartCmd = &cobra.Command{
	Use:   "start <user1> <user2>",
	Short: "Pick a random challenge and collect both answers",
	Long: `Selects a random challenge, shows each participant their half of the
prompt and stores both submissions. Answers are kept for review only; they
are never executed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		for _, name := range args {
			if _, err := c.UserService.GetByUsername(name); err != nil {
				return err
			}
		}

		challenge, err := c.ChallengeService.Random()
		if err != nil {
			return err
		}

		fmt.Printf("Challenge #%d: %s\n\n", challenge.ID, challenge.Description)
		if prompt("Do you accept the challenge? (y/n): ") != "y" {
			fmt.Println("Challenge declined.")
			return nil
		}

		for i, name := range args {
			clearScreen()
			fmt.Printf("--- %s's turn ---\n%s\n\n", name, challenge.PromptFor(i+1))
			body := promptMultiline("Enter your code:")

			if _, err := c.ChallengeService.Submit(name, challenge.ID, body); err != nil {
				return err
			}
		}

		// Reveal both halves side by side for the pair to review.
		answers, err := c.ChallengeService.Answers(challenge.ID)
		if err != nil {
			return err
		}

		clearScreen()
		fmt.Printf("Challenge #%d: %s\n", challenge.ID, challenge.Description)
		for _, a := range answers {
			fmt.Printf("\n=== %s ===\n%s\n", a.Username, a.Body)
		}
		return nil
	},
}

var challengeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a challenge to the pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		challenge, err := c.ChallengeService.AddChallenge(
			prompt("Description: "),
			prompt("Prompt for participant 1: "),
			prompt("Prompt for participant 2: "),
		)
		if err != nil {
			return err
		}

		fmt.Printf("Added challenge #%d\n", challenge.ID)
		return nil
	},
}

var challengeAnswersCmd = &cobra.Command{
	Use:   "answers <challenge-id>",
	Short: "Show all stored answers for a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("challenge id must be a number")
		}

		answers, err := c.ChallengeService.Answers(uint(id))
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			fmt.Println("(no answers)")
			return nil
		}

		for _, a := range answers {
			fmt.Printf("%3d | %-18s | %.60s\n", a.ID, a.Username, a.Body)
		}
		return nil
	},
}

func init() {
	challengeCmd.AddCommand(challengeStartCmd, challengeAddCmd, challengeAnswersCmd)
	rootCmd.AddCommand(challengeCmd)
}
