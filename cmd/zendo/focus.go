package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chris/zendo/config"
	"github.com/chris/zendo/internal/focus"
)

func newFocusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Run a focus countdown (Ctrl+C stops)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := config.Load().FocusMinutes
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid minutes %q: %w", args[0], err)
				}
				minutes = n
			}
			timer := focus.New(focus.DefaultMinutes)
			if err := timer.SetMinutes(minutes); err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\r%s", timer.Format())
			err := timer.Run(ctx, func(t *focus.Timer) {
				fmt.Fprintf(out, "\r%s %3.0f%%", t.Format(), t.Progress())
			})
			fmt.Fprintln(out)
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "stopped.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Session complete! Focus on your well-being.")
			return nil
		},
	}
}
