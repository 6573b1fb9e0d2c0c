package experiments

import (
	"github.com/rs/zerolog/log"

	"rpsplus/bot"
	"rpsplus/game"
)

// SeriesResult aggregates the outcomes of a bot-vs-bot series.
type SeriesResult struct {
	Matches int
	WinsA   int
	WinsB   int
	Draws   int
}

// RunSeries plays n matches between two strategies, strategyA in the human
// seat and strategyB in the bot seat, and tallies match outcomes. Useful for
// comparing strategies head to head over enough matches for the bomb
// schedules to matter.
func RunSeries(name string, strategyA, strategyB bot.Strategy, n int, cfg game.Config) SeriesResult {
	log.Info().Msgf("starting %s series (%d matches)...", name, n)

	res := SeriesResult{Matches: n}
	for i := 0; i < n; i++ {
		m := game.NewMatch(cfg)
		for !m.Complete() {
			a := strategyA.ChooseMove(m, game.Human)
			b := strategyB.ChooseMove(m, game.Bot)
			if _, err := m.SubmitRound(a.String(), b.String()); err != nil {
				// Cannot happen while the loop checks Complete, but a
				// truncated series beats a bogus tally.
				log.Error().Err(err).Str("match", m.ID).Msg("series aborted")
				return res
			}
		}
		switch m.Winner() {
		case game.Human:
			res.WinsA++
		case game.Bot:
			res.WinsB++
		default:
			res.Draws++
		}
	}

	log.Info().Msgf("finished %s series: A %d / B %d / draws %d",
		name, res.WinsA, res.WinsB, res.Draws)
	return res
}
