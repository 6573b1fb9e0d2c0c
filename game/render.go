package game

import (
	"fmt"
	"strings"
)

// FormatScore renders the running score from the human's perspective.
func FormatScore(m *Match) string {
	return fmt.Sprintf("You %d - %d Bot", m.Score(Human), m.Score(Bot))
}

// Describe renders a one-line explanation of the outcome for the front end.
func (o Outcome) Describe() string {
	switch o.Reason {
	case ReasonForfeit:
		return "Invalid move wastes the round. Nobody scores."
	case ReasonBombDraw:
		return "Both players used bomb! It's a draw."
	case ReasonBombBeats:
		if o.Winner == Human {
			return fmt.Sprintf("💥 BOOM! Your bomb obliterated the bot's %s!", o.BotMove)
		}
		return fmt.Sprintf("💥 BOOM! Bot's bomb obliterated your %s!", o.HumanMove)
	case ReasonEqual:
		return fmt.Sprintf("Both chose %s. It's a draw!", o.HumanMove)
	default:
		winning, losing := o.HumanMove, o.BotMove
		if o.Winner == Bot {
			winning, losing = o.BotMove, o.HumanMove
		}
		return fmt.Sprintf("%s beats %s!", capitalize(winning.String()), losing)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
