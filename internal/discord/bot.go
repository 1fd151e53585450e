package discord

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/store"
)

// Bot routes Discord messages to one assistant per channel. All channels share
// the same store.
type Bot struct {
	session *discordgo.Session
	store   *store.Store
	client  llm.Client
	opts    assistant.Options

	mu         sync.Mutex
	assistants map[string]*assistant.Assistant // by channel ID
	dmUserID   string                          // last user who wrote in a DM
}

func NewBot(token string, st *store.Store, client llm.Client, opts assistant.Options) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	bot := newBot(st, client, opts)
	bot.session = s
	s.AddHandler(bot.onMessage)
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuildMessages

	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("opening Discord connection: %w", err)
	}

	log.Printf("Discord bot connected as %s", s.State.User.Username)
	return bot, nil
}

func newBot(st *store.Store, client llm.Client, opts assistant.Options) *Bot {
	return &Bot{
		store:      st,
		client:     client,
		opts:       opts,
		assistants: make(map[string]*assistant.Assistant),
	}
}

func (b *Bot) Close() {
	b.session.Close()
}

// SendDM delivers text to a user's direct-message channel, split to fit
// Discord's message limit.
func (b *Bot) SendDM(userID, text string) error {
	ch, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("opening DM channel: %w", err)
	}
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if _, err := b.session.ChannelMessageSend(ch.ID, chunk); err != nil {
			return fmt.Errorf("sending DM: %w", err)
		}
	}
	return nil
}

// DMUser returns the ID of the last user who wrote to the bot directly, or ""
// if nobody has yet.
func (b *Bot) DMUser() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dmUserID
}

func (b *Bot) rememberDMUser(id string) {
	b.mu.Lock()
	b.dmUserID = id
	b.mu.Unlock()
}

func (b *Bot) assistantFor(channelID string) *assistant.Assistant {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.assistants[channelID]
	if !ok {
		a = assistant.New(b.store, b.client, b.opts)
		b.assistants[channelID] = a
	}
	return a
}
