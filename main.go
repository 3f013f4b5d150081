package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/api"
	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/content"
	"github.com/studioflow/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.New()

	// Validate the store configuration once, up front; a missing endpoint or
	// tenant ID cannot be limped through per request.
	storeCfg := config.NewAppwrite(cfg)
	if err := storeCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid record store configuration")
	}

	store := appwrite.NewClient(storeCfg)
	images := content.NewImageResolver(storeCfg)

	deps := api.Services{
		Projects: content.NewProjectService(store, storeCfg, images),
		Skills:   content.NewSkillService(store, storeCfg, images),
		Store:    store,
		Appwrite: storeCfg,
	}
	if notifier := services.NewResendNotifier(cfg); notifier != nil {
		deps.Notifier = notifier
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
