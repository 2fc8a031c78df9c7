package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/xavierca1/brand-bridge/internal/config"
	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
	"github.com/xavierca1/brand-bridge/internal/usecase"
)

// Options for a one-off run against the real Brevo account configured in .env.
type Options struct {
	Email  string `short:"e" long:"email" description:"contact email to subscribe" required:"true"`
	Source string `short:"s" long:"source" description:"SOURCE attribute" default:"smoke_test"`
	Status string `long:"status" description:"if set, also update the contact STATUS afterwards"`
}

func main() {
	options := &Options{}
	if _, err := flags.ParseArgs(options, os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("BREVO_API_KEY must be set in .env or the environment: %v", err)
	}

	logg, _ := zap.NewDevelopment()
	defer logg.Sync()

	client := brevo.NewClient(cfg.Brevo.APIKey, cfg.Brevo.BaseURL, cfg.Brevo.Timeout)
	ctx := context.Background()

	fmt.Printf("Subscribing %s to list %d (source %s)\n", options.Email, cfg.Brevo.ListID, options.Source)

	subscribe := usecase.NewSubscribeLeadUseCase(client, cfg.Brevo.ListID, logg)
	out, err := subscribe.Execute(ctx, usecase.SubscribeLeadInput{Email: options.Email, Source: &options.Source})
	if err != nil {
		log.Fatalf("subscribe failed: %v", err)
	}
	fmt.Printf("Subscribe: %s\n", out.Message)

	if options.Status == "" {
		return
	}

	update := usecase.NewUpdateContactStatusUseCase(client, logg)
	upd, err := update.Execute(ctx, usecase.UpdateContactStatusInput{Email: options.Email, Status: &options.Status})
	if err != nil {
		log.Fatalf("status update failed: %v", err)
	}
	fmt.Printf("Update status to %s: %s\n", options.Status, upd.Message)
}
