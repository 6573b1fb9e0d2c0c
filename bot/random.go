package bot

import (
	"golang.org/x/exp/rand"

	"rpsplus/game"
)

// Random plays a uniform rock/paper/scissors move and never spends its bomb.
// Useful as a baseline opponent in strategy series.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(*game.Match, game.Player) game.Move {
	return normalMoves[r.rng.Intn(len(normalMoves))]
}
