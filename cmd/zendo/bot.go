package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/chris/zendo/internal/discord"
	"github.com/chris/zendo/internal/scheduler"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot and the daily agenda digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			e, err := loadEnv(ctx)
			if err != nil {
				return err
			}
			if e.cfg.DiscordToken == "" {
				return errors.New("DISCORD_BOT_TOKEN is not set")
			}

			bot, err := discord.NewBot(e.cfg.DiscordToken, e.store, e.client, e.options())
			if err != nil {
				return err
			}
			defer bot.Close()

			dmUser := bot.DMUser
			if e.cfg.DiscordUserID != "" {
				dmUser = func() string {
					if id := bot.DMUser(); id != "" {
						return id
					}
					return e.cfg.DiscordUserID
				}
			}
			sched := scheduler.New(e.store, e.cfg.DiscordWebhook, bot.SendDM, dmUser)
			if err := sched.AddAgenda(e.cfg.AgendaCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			log.Println("bot is running. Press Ctrl+C to exit.")
			<-ctx.Done()
			log.Println("shutting down.")
			return nil
		},
	}
}
