package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/imitation/internal/coin"
	"github.com/KirkDiggler/imitation/internal/common/clock"
	"github.com/KirkDiggler/imitation/internal/common/uuid"
	"github.com/KirkDiggler/imitation/internal/handlers/discord"
	sessionRepo "github.com/KirkDiggler/imitation/internal/repositories/session"
	gameService "github.com/KirkDiggler/imitation/internal/services/game"
	"github.com/KirkDiggler/imitation/internal/services/responder"
)

type config struct {
	// DiscordToken authenticates the bot with the Discord gateway
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// CommandPrefix for chat commands
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// RandomSeed pins the concealment flip and reply generation for
	// reproducible runs. Zero seeds from the clock.
	RandomSeed int64 `env:"RANDOM_SEED"`
}

func main() {
	root := &cobra.Command{
		Use:   "imitation",
		Short: "Discord bot that runs the imitation game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	messenger, err := discord.NewMessenger(dg)
	if err != nil {
		log.Fatalf("Failed to create messenger: %v", err)
	}

	responderSvc, err := responder.New(&responder.Config{
		Seed: cfg.RandomSeed,
	})
	if err != nil {
		log.Fatalf("Failed to create responder service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   sessionRepo.NewMemory(),
		Responder:     responderSvc,
		Messenger:     messenger,
		Coin:          coin.New(&coin.Config{Seed: cfg.RandomSeed}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		CommandPrefix: cfg.CommandPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       dg,
		CommandPrefix: cfg.CommandPrefix,
		GameService:   gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
	return nil
}
