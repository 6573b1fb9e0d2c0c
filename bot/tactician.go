package bot

import (
	"golang.org/x/exp/rand"

	"rpsplus/game"
)

// Tactician spends its one bomb on a probabilistic schedule that ramps up
// over the match: rarely in the opener, more often mid-match, and with high
// probability on the final round while the opponent still holds a bomb of
// their own. Non-bomb rounds fall back to a uniform pick.
type Tactician struct {
	rng *rand.Rand
}

func NewTactician(seed uint64) *Tactician {
	return &Tactician{rng: rand.New(rand.NewSource(seed))}
}

func (t *Tactician) ChooseMove(m *game.Match, role game.Player) game.Move {
	if !m.Bombs.Used(role) {
		if p := bombChance(m, role); p > 0 && t.rng.Float64() < p {
			return game.MoveBomb
		}
	}
	return normalMoves[t.rng.Intn(len(normalMoves))]
}

func bombChance(m *game.Match, role game.Player) float64 {
	if m.Round() == m.Config.Rounds {
		// Last chance to cash the bomb in, unless the opponent already
		// burned theirs and a normal move carries no bomb risk.
		if !m.Bombs.Used(role.Opponent()) {
			return 0.7
		}
		return 0
	}
	if m.Round() == 1 {
		return 0.2
	}
	return 0.4
}
