package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/luminexhq/luminex-cli/internal/client"
	"github.com/luminexhq/luminex-cli/internal/handoff"
)

// newClient builds the backend client from the configured base URL.
func newClient() *client.Client {
	return client.New(viper.GetString("api.base_url"))
}

// newChannel opens the session-scoped handoff slot.
func newChannel() (handoff.Channel, error) {
	dir, err := handoff.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate handoff directory: %w", err)
	}
	store, err := handoff.NewSessionStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open handoff store: %w", err)
	}
	return store, nil
}
