package tui

import (
	"context"

	"github.com/luminexhq/luminex-cli/internal/handoff"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/themes"
)

// Comparer submits two documents to the comparison backend.
type Comparer interface {
	Compare(ctx context.Context, invoice, po *model.Document) (*model.ComparisonResult, error)
}

// Decider receives the approve/flag verification intents. Their effects
// (persisting a decision, workflow completion) live outside this client;
// the default implementation only acknowledges them.
type Decider interface {
	Approve(ctx context.Context, result *model.ComparisonResult) error
	Flag(ctx context.Context, result *model.ComparisonResult) error
}

// NoopDecider acknowledges intents without side effects.
type NoopDecider struct{}

// Approve implements Decider.
func (NoopDecider) Approve(_ context.Context, _ *model.ComparisonResult) error { return nil }

// Flag implements Decider.
func (NoopDecider) Flag(_ context.Context, _ *model.ComparisonResult) error { return nil }

// Config holds TUI configuration.
type Config struct {
	Client        Comparer
	Channel       handoff.Channel
	Decider       Decider
	InitialResult *model.ComparisonResult
	Theme         themes.Theme
	StartDir      string
	Width         int
	Height        int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:   themes.Default,
		Channel: handoff.NewMemory(),
		Decider: NoopDecider{},
		Width:   80,
		Height:  24,
	}
}

// WithClient sets the comparison backend client.
func WithClient(client Comparer) Option {
	return func(c *Config) {
		c.Client = client
	}
}

// WithChannel sets the result handoff channel.
func WithChannel(channel handoff.Channel) Option {
	return func(c *Config) {
		c.Channel = channel
	}
}

// WithDecider sets the workflow-completion collaborator.
func WithDecider(decider Decider) Option {
	return func(c *Config) {
		c.Decider = decider
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithStartDir sets the file picker's starting directory.
func WithStartDir(dir string) Option {
	return func(c *Config) {
		c.StartDir = dir
	}
}

// WithResult opens the TUI directly on the verification screen with an
// already-consumed comparison result.
func WithResult(result *model.ComparisonResult) Option {
	return func(c *Config) {
		c.InitialResult = result
	}
}
