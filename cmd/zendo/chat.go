package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/scheduler"
	"github.com/chris/zendo/internal/store"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant on the command line (one exchange when piped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return err
			}
			stat, _ := os.Stdin.Stat()
			isPipe := (stat.Mode() & os.ModeCharDevice) == 0
			runCLI(cmd, e.store, e.newAssistant(), os.Stdin, cmd.OutOrStdout(), isPipe)
			return nil
		},
	}
}

func runCLI(cmd *cobra.Command, st *store.Store, a *assistant.Assistant, in io.Reader, out io.Writer, isPipe bool) {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(in)

	if !isPipe {
		fmt.Fprintln(out, llm.Greeting)
		fmt.Fprint(out, "zendo> ")
	}

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			if !isPipe {
				fmt.Fprint(out, "zendo> ")
			}
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		if reply, ok := localCommand(st, input); ok {
			fmt.Fprintln(out, reply)
		} else {
			res, _ := a.HandleUserInput(ctx, input)
			if res.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", res.Err)
			}
			fmt.Fprintln(out, res.Reply)
		}

		if isPipe {
			break // single exchange in pipe mode
		}
		fmt.Fprint(out, "zendo> ")
	}
}

// localCommand answers the slash commands that read the store directly.
func localCommand(st *store.Store, input string) (string, bool) {
	switch {
	case input == "/agenda":
		return scheduler.FormatAgenda(st.Agenda(st.Today()), st.Now()), true
	case input == "/notes" || strings.HasPrefix(input, "/notes "):
		query := strings.TrimSpace(strings.TrimPrefix(input, "/notes"))
		return formatNotes(st.FilterNotes(query, ""), st.Now()), true
	case input == "/progress":
		p := st.Progress()
		return fmt.Sprintf("%d of %d tasks done (%d%%)", p.Completed, p.Total, p.Percent), true
	}
	return "", false
}

func formatNotes(notes []store.Note, now time.Time) string {
	if len(notes) == 0 {
		return "No notes found."
	}
	var b strings.Builder
	for _, n := range notes {
		ago := humanize.RelTime(time.UnixMilli(n.CreatedAt), now, "ago", "from now")
		fmt.Fprintf(&b, "- %s (%s)", n.Title, ago)
		if len(n.Tags) > 0 {
			fmt.Fprintf(&b, " #%s", strings.Join(n.Tags, " #"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
