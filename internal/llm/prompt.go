package llm

import (
	"fmt"
	"strings"
	"time"
)

const Greeting = "Hi! I'm your ZenDo AI. I can create tasks, events, or notes for you. Try saying 'Add a high priority task to buy milk' or 'Schedule a meeting for tomorrow at 3pm'."

const Apology = "Sorry, I ran into a bit of trouble. Could you try that again?"

// SystemPrompt builds the instruction sent with every request. It embeds the
// current date, so it must be rebuilt per request.
func SystemPrompt(now time.Time, categories []string) string {
	var b strings.Builder
	b.WriteString("You are ZenDo AI, a professional life organizer. Use the tools provided to create tasks, events, and notes. ")
	b.WriteString("If you create something, confirm it briefly to the user. ")
	b.WriteString("Always assume the user wants the most logical category if not specified. ")
	fmt.Fprintf(&b, "Today's date is %s.", now.Format("Mon Jan 02 2006"))
	if len(categories) > 0 {
		fmt.Fprintf(&b, " Available categories: %s.", strings.Join(categories, ", "))
	}
	return b.String()
}
