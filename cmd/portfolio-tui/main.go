// Command portfolio-tui previews the portfolio in the terminal.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/tui"
)

func main() {
	cfg, err := config.Load()
	// The program owns stdout, so diagnostics go to stderr.
	logger := logging.New("portfolio-tui", cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	model, err := tui.New(profile.Default(), cfg.Typewriter.Timing())
	if err != nil {
		logger.Fatal().Err(err).Msg("init preview")
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal().Err(err).Msg("run preview")
	}
}
