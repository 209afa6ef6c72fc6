package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"terminally-dating/app/pkg/health"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check application component health",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer()
		if err != nil {
			return err
		}

		c.Health.RunChecks()

		for _, line := range statusLines(c.Health.GetStatus()) {
			fmt.Println(line)
		}

		if !c.Health.IsSystemHealthy() {
			return fmt.Errorf("one or more critical components are down")
		}
		return nil
	},
}

// statusLines formats the component table in stable name order.
func statusLines(status map[string]*health.Component) []string {
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		component := status[name]
		line := fmt.Sprintf("%-10s %-6s %s", name, component.Status, component.Description)
		if component.Error != "" {
			line += " (" + component.Error + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
