package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	challengemodels "terminally-dating/app/challenge/models"
	chatmodels "terminally-dating/app/chat/models"
	"terminally-dating/app/pkg/config"
	usermodels "terminally-dating/app/user/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or migrate the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		if err := c.DB.AutoMigrate(
			&usermodels.User{},
			&chatmodels.Message{},
			&challengemodels.Challenge{},
			&challengemodels.Answer{},
		); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}

		// Composite index for the pair-history query.
		if err := c.DB.Exec(
			"CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender, receiver, sent_at)",
		).Error; err != nil {
			c.Logger.LogError(err, "failed to create message pair index")
		}

		if err := c.ChallengeService.SeedDefaults(); err != nil {
			return fmt.Errorf("seed challenges: %w", err)
		}

		cfg := config.Get()
		fmt.Printf("Initialized %s database\n", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
