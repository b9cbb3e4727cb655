package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

const (
	KeyPlayers       = "UNO_PLAYERS"
	KeyPlayerName    = "UNO_PLAYER_NAME"
	KeyTargetScore   = "UNO_TARGET_SCORE"
	KeyStartingCards = "UNO_STARTING_CARDS"
	KeySeed          = "UNO_SEED"
	KeyBot           = "UNO_BOT"
	KeyBotContinue   = "UNO_BOT_CONTINUE"
	KeyBotDelay      = "UNO_BOT_DELAY"
)

type Config struct {
	Players       int
	PlayerName    string
	TargetScore   int
	StartingCards int
	// Seed 0 means a time based seed.
	Seed        uint64
	Bot         string
	BotContinue float64
	BotDelay    time.Duration
}

func Default() Config {
	return Config{
		Players:       consts.MinPlayers,
		PlayerName:    "You",
		TargetScore:   consts.TargetScore,
		StartingCards: consts.StartingCards,
		Bot:           "good",
		BotContinue:   consts.BotContinueChance,
		BotDelay:      consts.BotDelay,
	}
}

// Load starts from the defaults, applies the .env file at path when it exists
// and then the process environment.
func Load(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%s: %w", path, consts.ErrorsConfigInvalid)
		}
		for key, value := range fileValues {
			values[key] = value
		}
	}
	for _, key := range []string{KeyPlayers, KeyPlayerName, KeyTargetScore, KeyStartingCards, KeySeed, KeyBot, KeyBotContinue, KeyBotDelay} {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}
	return parse(values)
}

func parse(values map[string]string) (Config, error) {
	cfg := Default()
	var err error
	for key, raw := range values {
		value := strings.TrimSpace(raw)
		switch key {
		case KeyPlayers:
			cfg.Players, err = strconv.Atoi(value)
		case KeyPlayerName:
			cfg.PlayerName = value
		case KeyTargetScore:
			cfg.TargetScore, err = strconv.Atoi(value)
		case KeyStartingCards:
			cfg.StartingCards, err = strconv.Atoi(value)
		case KeySeed:
			cfg.Seed, err = strconv.ParseUint(value, 10, 64)
		case KeyBot:
			cfg.Bot = strings.ToLower(value)
		case KeyBotContinue:
			cfg.BotContinue, err = strconv.ParseFloat(value, 64)
		case KeyBotDelay:
			cfg.BotDelay, err = time.ParseDuration(value)
		default:
			continue
		}
		if err != nil {
			return Config{}, invalid(key)
		}
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers:
		return invalid(KeyPlayers)
	case c.PlayerName == "":
		return invalid(KeyPlayerName)
	case c.TargetScore < 1:
		return invalid(KeyTargetScore)
	case c.StartingCards < 1 || c.StartingCards*c.Players > consts.DeckSize-9:
		return invalid(KeyStartingCards)
	case c.Bot != "good" && c.Bot != "naive":
		return invalid(KeyBot)
	case c.BotContinue < 0 || c.BotContinue > 1:
		return invalid(KeyBotContinue)
	case c.BotDelay < 0:
		return invalid(KeyBotDelay)
	}
	return nil
}

func invalid(key string) error {
	return fmt.Errorf("%s: %w", key, consts.ErrorsConfigInvalid)
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		StartingCards: c.StartingCards,
		TargetScore:   c.TargetScore,
	}
}

// GameSeed returns Seed, or a seed taken from the clock when Seed is 0.
func (c Config) GameSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
