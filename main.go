package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"

	"github.com/lukehollenback/toribank/config"
	"github.com/lukehollenback/toribank/console"
	"github.com/lukehollenback/toribank/constants"
	"github.com/lukehollenback/toribank/credentials"
	"github.com/lukehollenback/toribank/market"
	"github.com/lukehollenback/toribank/market/toribash"
)

const (
	Name = "≪toribank≫"
)

var (
	logger = constants.NewLogger(Name)
)

func main() {
	if err := run(); err != nil {
		logger.Printf("%s", err)
		os.Exit(1)
	}
}

func run() error {
	//
	// Register a kill signal handler with the operating system so that an in-flight request can be
	// abandoned.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	//
	// Load the configuration.
	//
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Printf("Failed to load .env. (Error: %s)", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	au := aurora.NewAurora(!cfg.NoColor)

	prompter := console.Stdio()
	prompter.SetColors(!cfg.NoColor)

	//
	// Make sure there are credentials to log in with, asking for them if necessary.
	//
	store := credentials.NewStore(cfg.CredentialPath)

	if cfg.Configure || !store.Exists() {
		if _, err := store.Configure(prompter); err != nil {
			return err
		}
	}

	record, err := store.Login()
	if err != nil {
		return err
	}

	//
	// Log in.
	//
	client, err := toribash.NewClient(
		toribash.WithBaseURL(cfg.BaseURL),
		toribash.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		toribash.WithColors(!cfg.NoColor),
		toribash.WithConfirm(prompter.Confirm),
	)
	if err != nil {
		return err
	}

	if err := client.Login(ctx, record.Username, record.PasswordHash); err != nil {
		var loginErr *market.LoginError
		if errors.As(err, &loginErr) {
			logger.Printf("Login failed, did you enter everything correctly? (%s)", au.Red(loginErr.Kind))
		}

		return err
	}

	if cfg.SkipDemo {
		return nil
	}

	return demo(ctx, client, au)
}

//
// demo runs through each of the market calls once.
//
func demo(ctx context.Context, client market.Client, au aurora.Aurora) error {
	users, err := market.Refs(16251, "suomynona", 150863)
	if err != nil {
		return err
	}

	hampa := market.Name("hampa")
	example := market.Name("example")

	steps := []struct {
		name string
		call func() (market.Response, error)
	}{
		{"UserInfo", func() (market.Response, error) {
			return client.UserInfo(ctx, users...)
		}},
		{"Items", func() (market.Response, error) {
			return client.Items(ctx, 50000, 50001)
		}},
		{"Inventory", func() (market.Response, error) {
			return client.Inventory(ctx, &hampa, 1)
		}},
		{"SendTC", func() (market.Response, error) {
			return client.SendTC(ctx, example, decimal.NewFromInt(999999999), market.SendTCOptions{})
		}},
		{"SendItems", func() (market.Response, error) {
			return client.SendItems(ctx, example, []int{50000, 50001}, market.SendItemsOptions{})
		}},
	}

	for _, step := range steps {
		resp, err := step.call()
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}

		if resp == nil {
			logger.Printf("%s ↝ %s", step.name, au.Yellow("skipped"))

			continue
		}

		if err := printJSON(resp); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func printJSON(resp market.Response) error {
	var payload interface{}

	if err := resp.Decode(&payload); err != nil {
		return err
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
