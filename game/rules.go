package game

// Player identifies one of the two fixed match roles.
type Player string

const (
	Human Player = "human"
	Bot   Player = "bot"
	// NoPlayer marks a drawn round or match.
	NoPlayer Player = ""
)

// Opponent returns the other match role.
func (p Player) Opponent() Player {
	if p == Human {
		return Bot
	}
	return Human
}

// BombUsage tracks which players have spent their one bomb this match.
// It is a value type so the resolver can return an updated copy instead of
// mutating shared state.
type BombUsage struct {
	Human bool
	Bot   bool
}

// Used reports whether p has already played their bomb.
func (b BombUsage) Used(p Player) bool {
	if p == Bot {
		return b.Bot
	}
	return b.Human
}

func (b BombUsage) mark(p Player) BombUsage {
	if p == Bot {
		b.Bot = true
	} else {
		b.Human = true
	}
	return b
}

// Reason explains why a round ended the way it did.
type Reason int

const (
	ReasonBeats    Reason = iota // classic cyclic dominance
	ReasonEqual                  // same move on both sides
	ReasonBombBeats
	ReasonBombDraw
	ReasonForfeit // invalid input wastes the round
)

// Outcome is the result of resolving one round. HumanMove and BotMove are the
// effective moves after any second-bomb downgrade, so history records what
// actually counted.
type Outcome struct {
	HumanMove Move
	BotMove   Move
	Winner    Player // NoPlayer on a draw
	Reason    Reason
}

// MoveOf returns the effective move p played.
func (o Outcome) MoveOf(p Player) Move {
	if p == Bot {
		return o.BotMove
	}
	return o.HumanMove
}

// beats maps each normal move to the move it defeats.
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MoveScissors: MovePaper,
	MovePaper:    MoveRock,
}

// Resolve applies the round rules to two parsed moves. Rules in priority
// order: an invalid move forfeits the round for both sides, bomb-vs-bomb
// draws, a lone bomb wins, otherwise classic dominance with equal moves
// drawing. A bomb from a player whose flag is already set downgrades to an
// invalid move before any rule applies.
//
// Resolve is pure: the updated bomb record is returned, never written back.
func Resolve(human, bot Move, bombs BombUsage) (Outcome, BombUsage) {
	if human == MoveBomb && bombs.Used(Human) {
		human = MoveInvalid
	}
	if bot == MoveBomb && bombs.Used(Bot) {
		bot = MoveInvalid
	}

	out := Outcome{HumanMove: human, BotMove: bot}
	switch {
	case human == MoveInvalid || bot == MoveInvalid:
		out.Winner, out.Reason = NoPlayer, ReasonForfeit
	case human == MoveBomb && bot == MoveBomb:
		out.Winner, out.Reason = NoPlayer, ReasonBombDraw
		bombs = bombs.mark(Human).mark(Bot)
	case human == MoveBomb:
		out.Winner, out.Reason = Human, ReasonBombBeats
		bombs = bombs.mark(Human)
	case bot == MoveBomb:
		out.Winner, out.Reason = Bot, ReasonBombBeats
		bombs = bombs.mark(Bot)
	case human == bot:
		out.Winner, out.Reason = NoPlayer, ReasonEqual
	case beats[human] == bot:
		out.Winner, out.Reason = Human, ReasonBeats
	default:
		out.Winner, out.Reason = Bot, ReasonBeats
	}
	return out, bombs
}
