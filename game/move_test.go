package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("recognized tokens", func(t *testing.T) {
		cases := map[string]Move{
			"rock":       MoveRock,
			"paper":      MovePaper,
			"scissors":   MoveScissors,
			"bomb":       MoveBomb,
			"ROCK":       MoveRock,
			"  Paper\t":  MovePaper,
			" SCISSORS ": MoveScissors,
			"Bomb":       MoveBomb,
		}
		for raw, want := range cases {
			require.Equal(t, want, ParseMove(raw),
				"Should parse %q case-insensitively and trimmed", raw)
		}
	})

	t.Run("everything else is invalid", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "rocks", "scissor", "1", "💣", "bom b", "paperclip"} {
			require.Equal(t, MoveInvalid, ParseMove(raw),
				"Should map unrecognized input %q to MoveInvalid", raw)
		}
	})

	t.Run("string round-trips for playable moves", func(t *testing.T) {
		for _, mv := range []Move{MoveRock, MovePaper, MoveScissors, MoveBomb} {
			require.Equal(t, mv, ParseMove(mv.String()),
				"Should parse the bot's own move text back to the same move")
			require.True(t, mv.Valid())
		}
		require.False(t, MoveInvalid.Valid())
	})
}
