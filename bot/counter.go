package bot

import (
	"golang.org/x/exp/rand"

	"rpsplus/game"
)

// Counter picks the move that beats the opponent's most frequent prior move,
// falling back to a uniform pick when no informative history exists. It
// bombs only on the final round when behind on score, where the bomb is a
// guaranteed pickup against anything but an opposing bomb.
type Counter struct {
	rng *rand.Rand
}

func NewCounter(seed uint64) *Counter {
	return &Counter{rng: rand.New(rand.NewSource(seed))}
}

func (c *Counter) ChooseMove(m *game.Match, role game.Player) game.Move {
	opp := role.Opponent()
	if !m.Bombs.Used(role) && m.Round() == m.Config.Rounds && m.Score(role) < m.Score(opp) {
		return game.MoveBomb
	}
	if mv, ok := frequentMove(m, opp); ok {
		return counterOf[mv]
	}
	return normalMoves[c.rng.Intn(len(normalMoves))]
}

// frequentMove returns the opponent's most played normal move, if any normal
// move has been played at all. Bombs and invalid moves carry no signal for a
// counter-pick.
func frequentMove(m *game.Match, opp game.Player) (game.Move, bool) {
	counts := map[game.Move]int{}
	for _, r := range m.History {
		mv := r.MoveOf(opp)
		if _, ok := counterOf[mv]; ok {
			counts[mv]++
		}
	}
	best, bestCount := game.MoveInvalid, 0
	for _, mv := range normalMoves {
		if counts[mv] > bestCount {
			best, bestCount = mv, counts[mv]
		}
	}
	return best, bestCount > 0
}
