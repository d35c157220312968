package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageDev  = "dev"
	StageProd = "prod"

	DefaultLogFile   = "battleship.log"
	DefaultShotDelay = time.Second * 2
)

type Config struct {
	Stage        string
	Language     string
	LangDir      string
	LogFile      string
	ShotDelay    time.Duration
	Seed         int64
	PlayerName   string
	OpponentName string
	DatabaseURL  string
}

// Load reads .env (outside prod), then the environment, then args. Flags win
// over the environment. A single positional argument names the language.
func Load(args []string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv() (Config, error) {
	cfg := Config{
		Stage:        os.Getenv("STAGE"),
		Language:     os.Getenv("BATTLESHIP_LANG"),
		LangDir:      os.Getenv("BATTLESHIP_LANG_DIR"),
		LogFile:      os.Getenv("BATTLESHIP_LOG_FILE"),
		ShotDelay:    DefaultShotDelay,
		Seed:         time.Now().UnixNano(),
		PlayerName:   os.Getenv("BATTLESHIP_PLAYER_NAME"),
		OpponentName: os.Getenv("BATTLESHIP_OPPONENT_NAME"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got %q", cfg.Stage)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	if v := os.Getenv("BATTLESHIP_SHOT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BATTLESHIP_SHOT_DELAY %q: %w", v, err)
		}
		cfg.ShotDelay = d
	}

	if v := os.Getenv("BATTLESHIP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BATTLESHIP_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func (c *Config) applyFlags(args []string) error {
	fset := flag.NewFlagSet("battleship", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	fset.StringVar(&c.Language, "lang", c.Language, "language of messages (en, ru, ua)")
	fset.StringVar(&c.LogFile, "log", c.LogFile, "log file")
	fset.DurationVar(&c.ShotDelay, "delay", c.ShotDelay, "pause after each computer shot")
	fset.Int64Var(&c.Seed, "seed", c.Seed, "seed of the computer's random choices")
	fset.StringVar(&c.PlayerName, "name", c.PlayerName, "your name")
	fset.StringVar(&c.OpponentName, "opponent", c.OpponentName, "computer's name")
	fset.StringVar(&c.DatabaseURL, "db", c.DatabaseURL, "postgres url for game analytics")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	switch fset.NArg() {
	case 0:
	case 1:
		c.Language = fset.Arg(0)
	default:
		return fmt.Errorf("expected at most one language argument, got %d", fset.NArg())
	}

	if c.ShotDelay < 0 {
		return fmt.Errorf("shot delay must not be negative: %s", c.ShotDelay)
	}
	return nil
}
