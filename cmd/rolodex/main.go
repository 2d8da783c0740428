package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/handler"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"1" help:"Start the interactive assistant."`
}

// ChatCmd starts the interactive assistant session.
type ChatCmd struct {
	Window int  `help:"Upcoming birthday window in days (overrides config)." default:"0"`
	Plain  bool `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// sessionRunner abstracts tui.Session for testing.
type sessionRunner interface {
	Run() error
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the chat command.
func (c *ChatCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	c.applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	assistant := handler.New(book.New(), handler.WithWindow(cfg.Assistant.WindowDays))

	session := tui.NewSession(tui.Options{
		ForcePlain: cfg.UI.Plain,
		Banner:     handler.MsgWelcome,
		Prompt:     cfg.UI.Prompt,
		Executor:   assistant,
	})

	return c.run(session)
}

// applyFlags overlays CLI flag values onto the loaded config.
// A zero window means "use the configured value".
func (c *ChatCmd) applyFlags(cfg *config.Config) {
	if c.Window > 0 {
		cfg.Assistant.WindowDays = c.Window
	}
	if c.Plain {
		cfg.UI.Plain = true
	}
}

// run executes the session, enabling testable wiring.
func (c *ChatCmd) run(session sessionRunner) error {
	if err := session.Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
