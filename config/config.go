package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/lukehollenback/toribank/credentials"
	"github.com/lukehollenback/toribank/market/toribash"
)

//
// Config holds everything the command needs to know to run. Values come from the defaults, then
// the environment (optionally seeded from a .env file), then the command line.
//
type Config struct {
	CredentialPath string
	BaseURL        string
	Timeout        time.Duration
	Configure      bool
	SkipDemo       bool
	NoColor        bool
}

//
// LoadDotEnv seeds the environment from the provided .env file. A missing file is not an error, and
// variables that are already set are left alone.
//
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

//
// Load builds the configuration from the environment and the provided command-line arguments
// (without the program name).
//
func Load(args []string) (Config, error) {
	cfg := Config{
		CredentialPath: getEnv("TORI_CONFIG", credentials.DefaultPath),
		BaseURL:        getEnv("TORI_BASE_URL", toribash.BaseURL),
		NoColor:        getBool("TORI_NO_COLOR", false),
	}

	var err error

	if cfg.Timeout, err = getDuration("TORI_TIMEOUT", 0); err != nil {
		return Config{}, err
	}

	flags := pflag.NewFlagSet("toribank", pflag.ContinueOnError)

	flags.StringVar(&cfg.CredentialPath, "config", cfg.CredentialPath, "Path to the credential file.")
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL of the forum.")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout for each HTTP request (0 waits forever).")
	flags.BoolVar(&cfg.Configure, "configure", false, "Ask for new credentials even if some are already stored.")
	flags.BoolVar(&cfg.SkipDemo, "skip-demo", false, "Only log in; do not run the example calls.")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
