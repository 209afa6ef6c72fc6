package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"terminally-dating/app/pkg/config"
	"terminally-dating/app/pkg/di"
	"terminally-dating/app/pkg/logger"
)

var stdin = bufio.NewReader(os.Stdin)

var rootCmd = &cobra.Command{
	Use:           "termdate",
	Short:         "A terminal-based dating app",
	Long:          "termdate renders profiles, runs two-party chat and pairs users on code challenges, all from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	cfg := config.New()

	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = cfg.Logging.Format == "json"
	logger.SetGlobal(logger.New(logConfig))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// mustContainer opens the database and wires the service container. CLI
// commands that touch storage call this once at the top.
func mustContainer() (*di.Container, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return di.New(db, nil)
}

// prompt reads one line of input with a label, trimming whitespace.
func prompt(label string) string {
	fmt.Print(label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptMultiline reads lines until a line containing only END.
func promptMultiline(label string) string {
	fmt.Println(label)
	fmt.Println("(type END on its own line to finish)")
	var lines []string
	for {
		line, err := stdin.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if strings.TrimSpace(trimmed) == "END" || err != nil {
			break
		}
		lines = append(lines, trimmed)
	}
	return strings.Join(lines, "\n")
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}
