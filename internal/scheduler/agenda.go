package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris/zendo/internal/store"
)

// FormatAgenda renders an agenda as a chat message.
func FormatAgenda(a store.Agenda, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Agenda for %s\n", now.Format("Mon Jan 2"))

	if len(a.Tasks) == 0 && len(a.Events) == 0 {
		b.WriteString("Nothing scheduled today. Enjoy the calm.")
		return b.String()
	}

	if len(a.Tasks) > 0 {
		b.WriteString("\nTasks due:\n")
		for _, t := range a.Tasks {
			box := "[ ]"
			if t.IsCompleted {
				box = "[x]"
			}
			fmt.Fprintf(&b, "- %s %s (%s)\n", box, t.Title, t.Priority)
		}
	}
	if len(a.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, e := range a.Events {
			fmt.Fprintf(&b, "- %s %s", e.Time, e.Title)
			if e.Location != "" {
				fmt.Fprintf(&b, " @ %s", e.Location)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
