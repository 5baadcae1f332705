package client

import (
	"context"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/workers"
)

// UI is the interactive surface the app runs. The terminal UI implements it.
type UI interface {
	// Run starts the interactive loop and blocks until the user exits.
	Run(ctx context.Context) error
}

// App ties the console pieces together: the interactive UI in the
// foreground and the record refresh job in the background.
type App struct {
	ui      UI
	session *Session
	browser *Browser
	refresh *workers.TickerWorker
	logger  *logger.Logger
}

func NewApp(ui UI, session *Session, browser *Browser, cfg config.Workers, logger *logger.Logger) *App {
	refresh := workers.NewTickerWorker(cfg.RefreshInterval, func(ctx context.Context) {
		// nothing to refresh until the user has logged in
		if !session.Active() {
			return
		}
		if err := browser.Refresh(ctx); err != nil {
			logger.Warn().Err(err).Msg("background refresh failed")
		}
	})

	return &App{
		ui:      ui,
		session: session,
		browser: browser,
		refresh: refresh,
		logger:  logger,
	}
}

// Run starts the background refresh and hands the terminal to the UI. It
// returns when the user exits the console.
func (a *App) Run() error {
	ctx := context.Background()

	a.refresh.Run()
	defer a.refresh.Stop()

	return a.ui.Run(ctx)
}
