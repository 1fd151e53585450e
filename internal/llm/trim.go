package llm

// TrimMessages trims a message history to fit within a token budget.
//
// Messages are grouped into exchanges (a user turn plus the model turns that
// answer it). The most recent exchange is always kept; older exchanges are
// dropped oldest-first until the rest fits. A budget <= 0 disables trimming.
func TrimMessages(messages []Message, maxTokens int) []Message {
	if len(messages) == 0 || maxTokens <= 0 {
		return messages
	}

	groups := groupMessages(messages)

	total := 0
	for _, g := range groups {
		total += g.tokens
	}
	if total <= maxTokens {
		return messages
	}

	kept := total
	dropUntil := 0
	for dropUntil < len(groups)-1 && kept > maxTokens {
		kept -= groups[dropUntil].tokens
		dropUntil++
	}

	var trimmed []Message
	for _, g := range groups[dropUntil:] {
		trimmed = append(trimmed, g.messages...)
	}
	return trimmed
}

type messageGroup struct {
	messages []Message
	tokens   int
}

// groupMessages starts a new group at every user message. Model messages join
// the group in progress; leading model messages form their own group.
func groupMessages(messages []Message) []messageGroup {
	var groups []messageGroup
	for _, msg := range messages {
		if msg.Role == RoleUser || len(groups) == 0 {
			groups = append(groups, messageGroup{})
		}
		g := &groups[len(groups)-1]
		g.messages = append(g.messages, msg)
		g.tokens += EstimateMessageTokens(msg)
	}
	return groups
}
