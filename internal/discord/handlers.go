package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	maxMessageLen = 2000
	busyReply     = "Still working on your last message, one moment."
)

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore own messages
	if m.Author.ID == s.State.User.ID {
		return
	}

	// Only respond to DMs or when mentioned
	isDM := m.GuildID == ""
	isMentioned := false
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			isMentioned = true
			break
		}
	}

	if !isDM && !isMentioned {
		return
	}

	if isDM {
		b.rememberDMUser(m.Author.ID)
	}

	content := incomingText(m.Content, s.State.User.ID)
	if content == "" {
		return
	}

	// Show typing indicator
	s.ChannelTyping(m.ChannelID)

	reply := b.respond(context.Background(), m.ChannelID, content)
	for _, chunk := range splitMessage(reply, maxMessageLen) {
		s.ChannelMessageSend(m.ChannelID, chunk)
	}
}

// respond runs content through the channel's assistant. Backend failures are
// already turned into an apology by the assistant.
func (b *Bot) respond(ctx context.Context, channelID, content string) string {
	res, ok := b.assistantFor(channelID).HandleUserInput(ctx, content)
	if !ok {
		return busyReply
	}
	return res.Reply
}

// incomingText is the user's request with the bot's mentions removed.
func incomingText(raw, botID string) string {
	return strings.TrimSpace(stripMention(raw, botID))
}

func stripMention(s, userID string) string {
	s = strings.ReplaceAll(s, "<@"+userID+">", "")
	s = strings.ReplaceAll(s, "<@!"+userID+">", "")
	return s
}

func splitMessage(s string, maxLen int) []string {
	if len(s) <= maxLen {
		return []string{s}
	}
	var chunks []string
	for len(s) > maxLen {
		end := maxLen
		// Try to split at a newline
		if idx := strings.LastIndex(s[:end], "\n"); idx > 0 {
			end = idx + 1
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return append(chunks, s)
}
