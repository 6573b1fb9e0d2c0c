package game

import "strings"

// Move is one entry of the closed move vocabulary. MoveInvalid is a
// first-class value, not an error: bad input still consumes a round.
type Move int

const (
	MoveInvalid Move = iota
	MoveRock
	MovePaper
	MoveScissors
	MoveBomb
)

// ParseMove normalizes raw input (case-insensitive, trimmed) to a Move.
// Anything outside the vocabulary maps to MoveInvalid.
func ParseMove(raw string) Move {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rock":
		return MoveRock
	case "paper":
		return MovePaper
	case "scissors":
		return MoveScissors
	case "bomb":
		return MoveBomb
	default:
		return MoveInvalid
	}
}

func (m Move) String() string {
	switch m {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	case MoveBomb:
		return "bomb"
	default:
		return "invalid"
	}
}

func (m Move) Emoji() string {
	switch m {
	case MoveRock:
		return "🪨"
	case MovePaper:
		return "📄"
	case MoveScissors:
		return "✂️"
	case MoveBomb:
		return "💣"
	default:
		return ""
	}
}

// Valid reports whether m is a playable move.
func (m Move) Valid() bool {
	return m != MoveInvalid
}
