package cmd

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/mkarpov/vitals/internal/config"
	"github.com/mkarpov/vitals/internal/logging"
	"github.com/mkarpov/vitals/pkg/board"
	"github.com/mkarpov/vitals/pkg/chart"
)

func runBoard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("vitals needs an interactive terminal")
	}

	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	logFile, _ := cmd.Flags().GetString("log-file")
	log, err := logging.New(logFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	m := board.New(cfg, log, chart.Terminal{})
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// applyFlagOverrides lets flags set on the command line win over the config
// file. Only visited flags apply, so unset flags never clobber file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "locale":
			cfg.Locale = f.Value.String()
		case "debounce-ms":
			if v, err := strconv.Atoi(f.Value.String()); err == nil && v > 0 {
				cfg.DebounceMS = v
			}
		case "autohide-ms":
			if v, err := strconv.Atoi(f.Value.String()); err == nil && v > 0 {
				cfg.AutoHideMS = v
			}
		}
	})
}
