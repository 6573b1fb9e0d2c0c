package game

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMatchComplete is returned by SubmitRound once all rounds are played.
var ErrMatchComplete = errors.New("match already complete")

// Config carries per-match settings so multiple matches can run with
// independent rules (e.g. a best-of-5 in tests) without shared state.
type Config struct {
	Rounds int // fixed match length; the match always plays them all
}

func DefaultConfig() Config {
	return Config{Rounds: 3}
}

// RoundResult records one finished round.
type RoundResult struct {
	Round int // 1-based
	Outcome
}

// Match holds the full state of one fixed-length match: round history,
// scores, bomb flags and the cached final winner. Not safe for concurrent
// use; a match belongs to a single session for its lifetime.
type Match struct {
	ID      string
	Config  Config
	History []RoundResult
	Bombs   BombUsage

	humanScore int
	botScore   int
	complete   bool
	winner     Player
}

// NewMatch creates an empty match. A non-positive round count falls back to
// the default best-of-3.
func NewMatch(cfg Config) *Match {
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultConfig().Rounds
	}
	return &Match{ID: uuid.NewString(), Config: cfg}
}

// Round returns the 1-based number of the next round to be played.
func (m *Match) Round() int {
	return len(m.History) + 1
}

// Score returns the number of rounds p has won outright.
func (m *Match) Score(p Player) int {
	if p == Bot {
		return m.botScore
	}
	return m.humanScore
}

// Complete reports whether the match has played all its rounds.
func (m *Match) Complete() bool {
	return m.complete
}

// Winner returns the match winner, NoPlayer for a draw. Only meaningful once
// Complete reports true.
func (m *Match) Winner() Player {
	return m.winner
}

// SubmitRound parses both raw inputs, resolves the round and records the
// result. The bot's move text goes through the same parse path as the
// human's. Recording is all-or-nothing: once the match is complete no state
// changes and ErrMatchComplete is returned.
func (m *Match) SubmitRound(rawHuman, rawBot string) (RoundResult, error) {
	if m.complete {
		return RoundResult{}, ErrMatchComplete
	}

	out, bombs := Resolve(ParseMove(rawHuman), ParseMove(rawBot), m.Bombs)
	result := RoundResult{Round: m.Round(), Outcome: out}

	m.History = append(m.History, result)
	m.Bombs = bombs
	switch out.Winner {
	case Human:
		m.humanScore++
	case Bot:
		m.botScore++
	}
	if len(m.History) == m.Config.Rounds {
		m.complete = true
		m.winner = finalWinner(m.humanScore, m.botScore)
	}
	return result, nil
}

func finalWinner(human, bot int) Player {
	switch {
	case human > bot:
		return Human
	case bot > human:
		return Bot
	default:
		return NoPlayer
	}
}
