package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/tui"
)

// Options are the command line settings for a run.
type Options struct {
	ConfigPath string
	LogFile    string
	Debug      bool
	NoMouse    bool

	// WriteConfig saves the effective config and exits without starting the board.
	WriteConfig bool
}

func Run(ctx context.Context, opts Options) error {
	closeLog, err := logging.Init(opts.LogFile, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	model, cfg, err := newModel(opts, logging.Logger)
	if err != nil {
		return err
	}

	logging.Logger.Info("starting", "config", cfg.Path(), "mouse", !cfg.DisableMouse)

	p := tea.NewProgram(model, programOptions(ctx, cfg)...)
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run board: %w", err)
	}

	if m, ok := finalModel.(*tui.Model); ok {
		logBoard(logging.Logger, m.Board())
	}
	return nil
}

// WriteConfig loads the config, fills in defaults and writes it back,
// returning the path written.
func WriteConfig(opts Options) (string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if opts.NoMouse {
		cfg.DisableMouse = true
	}
	if err := cfg.Save(); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return cfg.Path(), nil
}

func newModel(opts Options, logger *slog.Logger) (*tui.Model, *config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.NoMouse {
		cfg.DisableMouse = true
	}

	b := board.Default()
	if err := b.Validate(); err != nil {
		return nil, nil, fmt.Errorf("initial board: %w", err)
	}

	model := tui.NewModel(b, cfg, logger)
	return &model, cfg, nil
}

func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !cfg.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

func logBoard(logger *slog.Logger, b board.Board) {
	for _, col := range b.Columns {
		ids := make([]int, 0, col.ItemCount())
		for _, it := range col.Items {
			ids = append(ids, it.ID)
		}
		logger.Info("final column", "key", col.Key, "title", col.Title, "items", ids)
	}
}
