package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris/zendo/config"
	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "zendo",
		Short:        "Tasks, events, notes and a focus timer, with an AI assistant",
		SilenceUsage: true,
	}
	root.AddCommand(
		newChatCmd(),
		newTUICmd(),
		newServeCmd(),
		newBotCmd(),
		newFocusCmd(),
	)
	return root
}

// env is what every command that talks to the assistant needs.
type env struct {
	cfg    *config.Config
	store  *store.Store
	client llm.Client
}

func (e *env) options() assistant.Options {
	return assistant.Options{
		MaxContextTokens: e.cfg.MaxContextTokens,
		Strict:           e.cfg.StrictToolArgs,
	}
}

func (e *env) newAssistant() *assistant.Assistant {
	return assistant.New(e.store, e.client, e.options())
}

func loadEnv(ctx context.Context) (*env, error) {
	cfg := config.Load()

	st, err := store.NewSeeded(time.Now)
	if err != nil {
		return nil, fmt.Errorf("loading seed data: %w", err)
	}

	client, err := llm.NewClient(ctx, cfg.Provider())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &env{cfg: cfg, store: st, client: client}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
