package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Variant identifies which poker game the server deals.
type Variant string

const (
	FiveCardDraw  Variant = "5card"
	SevenCardStud Variant = "7card"
	TexasHoldem   Variant = "texas"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	Addr        string        // TCP listen address for the player protocol
	WebAddr     string        // optional HTTP listen address for the spectator feed
	Variant     Variant       // which game to deal
	Players     int           // seats to fill before a hand starts
	Ante        int           // forced ante for draw and stud
	SmallBlind  int           // hold'em small blind; big blind is double
	TurnTimeout time.Duration // how long a player may sit on their turn; 0 waits forever
	MongoURI    string        // empty selects the in-memory store
	LogLevel    string
}

// Load reads configuration from the environment, honoring a .env file
// if one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       getenv("DEALER_ADDR", ":8080"),
		WebAddr:    os.Getenv("DEALER_WEB_ADDR"),
		MongoURI:   os.Getenv("DEALER_MONGO_URI"),
		LogLevel:   getenv("DEALER_LOG_LEVEL", "info"),
		Ante:       5,
		SmallBlind: 2,
		Players:    2,
	}

	switch v := Variant(getenv("DEALER_VARIANT", string(TexasHoldem))); v {
	case FiveCardDraw, SevenCardStud, TexasHoldem:
		cfg.Variant = v
	default:
		return Config{}, fmt.Errorf("unknown variant %q", v)
	}

	var err error
	if cfg.Players, err = getint("DEALER_PLAYERS", cfg.Players); err != nil {
		return Config{}, err
	}
	if cfg.Players < 2 {
		return Config{}, fmt.Errorf("DEALER_PLAYERS must be at least 2, got %d", cfg.Players)
	}
	if cfg.Ante, err = getint("DEALER_ANTE", cfg.Ante); err != nil {
		return Config{}, err
	}
	if cfg.SmallBlind, err = getint("DEALER_SMALL_BLIND", cfg.SmallBlind); err != nil {
		return Config{}, err
	}

	seconds, err := getint("DEALER_TURN_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.TurnTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

// BigBlind returns the hold'em big blind.
func (c Config) BigBlind() int {
	return c.SmallBlind * 2
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
