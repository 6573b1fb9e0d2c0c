package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"rpsplus/bot"
	"rpsplus/game"
)

// HumanInput supplies the human's raw move text for the round about to be
// played. Returning an error aborts the match (e.g. the input source closed).
type HumanInput func(m *game.Match) (string, error)

// Engine drives one match: it collects the human's raw input, asks the bot
// strategy for its move, and submits both through the same validation path.
type Engine struct {
	Match *game.Match
	Input HumanInput
	Bot   bot.Strategy

	// OnRound, if set, is called after each recorded round so the front end
	// can render the result immediately.
	OnRound func(m *game.Match, result game.RoundResult)
}

func New(cfg game.Config, input HumanInput, strategy bot.Strategy) *Engine {
	return &Engine{
		Match: game.NewMatch(cfg),
		Input: input,
		Bot:   strategy,
	}
}

// Run plays rounds until the match completes and returns the final state.
func (e *Engine) Run() (*game.Match, error) {
	log.Info().
		Str("match", e.Match.ID).
		Int("rounds", e.Match.Config.Rounds).
		Msg("match started")

	for !e.Match.Complete() {
		raw, err := e.Input(e.Match)
		if err != nil {
			return e.Match, fmt.Errorf("read human move: %w", err)
		}
		botMove := e.Bot.ChooseMove(e.Match, game.Bot)

		// The bot's choice is fed back as text so both sides share one
		// parse path.
		result, err := e.Match.SubmitRound(raw, botMove.String())
		if err != nil {
			return e.Match, err
		}

		log.Info().
			Str("match", e.Match.ID).
			Int("round", result.Round).
			Stringer("human", result.HumanMove).
			Stringer("bot", result.BotMove).
			Str("winner", string(result.Winner)).
			Msg("round resolved")

		if e.OnRound != nil {
			e.OnRound(e.Match, result)
		}
	}

	log.Info().
		Str("match", e.Match.ID).
		Str("winner", string(e.Match.Winner())).
		Msgf("match over: %s", game.FormatScore(e.Match))
	return e.Match, nil
}
