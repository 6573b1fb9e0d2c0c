package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"rpsplus/bot"
	"rpsplus/engine"
	"rpsplus/experiments"
	"rpsplus/game"
)

type config struct {
	Rounds   int    `env:"RPSPLUS_ROUNDS" envDefault:"3"`
	Seed     uint64 `env:"RPSPLUS_SEED"`
	Strategy string `env:"RPSPLUS_STRATEGY" envDefault:"tactician"`
	LogLevel string `env:"RPSPLUS_LOG_LEVEL" envDefault:"warn"`
}

const intro = `Welcome to Rock-Paper-Scissors-Plus! 🎮

Rules: Best of %d rounds. Choose: rock, paper, scissors, or bomb (once per game).
Bomb beats everything except another bomb. Invalid moves waste your turn.

`

func main() {
	simulate := flag.Bool("simulate", false, "run bot-vs-bot strategy series instead of an interactive match")
	games := flag.Int("games", 200, "matches per simulated series")
	flag.Parse()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if *simulate {
		runSeries(cfg, seed, *games)
		return
	}
	runInteractive(cfg, seed)
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)
}

func runInteractive(cfg config, seed uint64) {
	fmt.Printf(intro, cfg.Rounds)

	scanner := bufio.NewScanner(os.Stdin)
	input := func(m *game.Match) (string, error) {
		fmt.Printf("Round %d of %d. %s\n", m.Round(), m.Config.Rounds, game.FormatScore(m))
		prompt := "Your move? (rock/paper/scissors"
		if !m.Bombs.Used(game.Human) {
			prompt += "/bomb"
		}
		fmt.Print(prompt + "): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}

	e := engine.New(game.Config{Rounds: cfg.Rounds}, input, newStrategy(cfg.Strategy, seed))
	e.OnRound = func(m *game.Match, result game.RoundResult) {
		fmt.Printf("You: %s %s  Bot: %s %s\n",
			result.HumanMove, result.HumanMove.Emoji(),
			result.BotMove, result.BotMove.Emoji())
		fmt.Println(result.Describe())
		fmt.Println()
	}

	m, err := e.Run()
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Println("\nMatch abandoned.")
			return
		}
		fmt.Fprintf(os.Stderr, "match failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final score: %s\n", game.FormatScore(m))
	switch m.Winner() {
	case game.Human:
		fmt.Println("You win the match! 🎉")
	case game.Bot:
		fmt.Println("The bot wins the match. 💀")
	default:
		fmt.Println("The match is a draw.")
	}
}

func runSeries(cfg config, seed uint64, games int) {
	matchCfg := game.Config{Rounds: cfg.Rounds}
	series := []struct {
		name string
		a, b bot.Strategy
	}{
		{"tactician vs random", bot.NewTactician(seed), bot.NewRandom(seed + 1)},
		{"counter vs random", bot.NewCounter(seed + 2), bot.NewRandom(seed + 3)},
		{"tactician vs counter", bot.NewTactician(seed + 4), bot.NewCounter(seed + 5)},
	}
	for _, s := range series {
		res := experiments.RunSeries(s.name, s.a, s.b, games, matchCfg)
		fmt.Printf("%-22s A %3d / B %3d / draws %3d (of %d)\n",
			s.name, res.WinsA, res.WinsB, res.Draws, res.Matches)
	}
}

func newStrategy(name string, seed uint64) bot.Strategy {
	switch strings.ToLower(name) {
	case "random":
		return bot.NewRandom(seed)
	case "counter":
		return bot.NewCounter(seed)
	default:
		return bot.NewTactician(seed)
	}
}
