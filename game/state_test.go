package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	m := NewMatch(DefaultConfig())
	require.NotEmpty(t, m.ID)
	require.Empty(t, m.History)
	require.Equal(t, BombUsage{}, m.Bombs)
	require.Equal(t, 1, m.Round())
	require.False(t, m.Complete())

	t.Run("non-positive round count falls back to default", func(t *testing.T) {
		m := NewMatch(Config{})
		require.Equal(t, 3, m.Config.Rounds)
	})
}

func TestSubmitRound(t *testing.T) {
	t.Run("returns the recorded result", func(t *testing.T) {
		m := NewMatch(DefaultConfig())
		result, err := m.SubmitRound("rock", "scissors")
		require.NoError(t, err)
		require.Equal(t, 1, result.Round)
		require.Equal(t, Human, result.Winner)
		require.Equal(t, ReasonBeats, result.Reason)
		require.Len(t, m.History, 1)
		require.Equal(t, result, m.History[0])
		require.Equal(t, 1, m.Score(Human))
		require.Equal(t, 0, m.Score(Bot))
	})

	t.Run("bomb flag flips exactly once", func(t *testing.T) {
		m := NewMatch(Config{Rounds: 5})
		_, err := m.SubmitRound("bomb", "rock")
		require.NoError(t, err)
		require.True(t, m.Bombs.Used(Human))

		// Second attempt forfeits instead of scoring.
		result, err := m.SubmitRound("bomb", "rock")
		require.NoError(t, err)
		require.Equal(t, ReasonForfeit, result.Reason)
		require.Equal(t, MoveInvalid, result.HumanMove)
		require.Equal(t, 1, m.Score(Human))
		require.True(t, m.Bombs.Used(Human))
		require.False(t, m.Bombs.Used(Bot))
	})

	t.Run("rejects a fourth round without mutating state", func(t *testing.T) {
		m := NewMatch(DefaultConfig())
		for i := 0; i < 3; i++ {
			_, err := m.SubmitRound("rock", "rock")
			require.NoError(t, err)
		}
		require.True(t, m.Complete())

		history := append([]RoundResult(nil), m.History...)
		bombs := m.Bombs
		_, err := m.SubmitRound("bomb", "paper")
		require.ErrorIs(t, err, ErrMatchComplete)
		require.Equal(t, history, m.History, "History should be untouched")
		require.Equal(t, bombs, m.Bombs, "Bomb flags should be untouched")
		require.Equal(t, 0, m.Score(Human))
		require.Equal(t, 0, m.Score(Bot))
	})

	t.Run("strict fixed length even with a clinched lead", func(t *testing.T) {
		m := NewMatch(DefaultConfig())
		m.SubmitRound("rock", "scissors")
		m.SubmitRound("rock", "scissors")
		require.False(t, m.Complete(),
			"Two wins out of three should not end the match early")
		m.SubmitRound("rock", "scissors")
		require.True(t, m.Complete())
		require.Equal(t, Human, m.Winner())
	})

	t.Run("best-of-5 config", func(t *testing.T) {
		m := NewMatch(Config{Rounds: 5})
		for i := 0; i < 5; i++ {
			_, err := m.SubmitRound("paper", "rock")
			require.NoError(t, err)
		}
		require.True(t, m.Complete())
		require.Equal(t, 5, m.Score(Human))
		_, err := m.SubmitRound("rock", "rock")
		require.ErrorIs(t, err, ErrMatchComplete)
	})
}

func TestMatchScenarios(t *testing.T) {
	t.Run("bomb trade ends in a draw", func(t *testing.T) {
		m := NewMatch(DefaultConfig())

		r1, err := m.SubmitRound("rock", "scissors")
		require.NoError(t, err)
		require.Equal(t, Human, r1.Winner, "Rock should beat scissors")

		r2, err := m.SubmitRound("paper", "bomb")
		require.NoError(t, err)
		require.Equal(t, Bot, r2.Winner, "Bomb should beat paper")
		require.True(t, m.Bombs.Used(Bot))
		require.False(t, m.Bombs.Used(Human))

		// The bot's second bomb downgrades to invalid, which forfeits the
		// round; the human's bomb is thrown into a wasted round and is not
		// consumed.
		r3, err := m.SubmitRound("bomb", "bomb")
		require.NoError(t, err)
		require.Equal(t, NoPlayer, r3.Winner)
		require.Equal(t, ReasonForfeit, r3.Reason)
		require.Equal(t, MoveBomb, r3.HumanMove)
		require.Equal(t, MoveInvalid, r3.BotMove)
		require.False(t, m.Bombs.Used(Human),
			"A bomb in a forfeited round should not be consumed")

		require.True(t, m.Complete())
		require.Equal(t, 1, m.Score(Human))
		require.Equal(t, 1, m.Score(Bot))
		require.Equal(t, NoPlayer, m.Winner(), "1-1 should be a drawn match")
	})

	t.Run("first-round bomb trade", func(t *testing.T) {
		m := NewMatch(DefaultConfig())
		r1, err := m.SubmitRound("bomb", "bomb")
		require.NoError(t, err)
		require.Equal(t, ReasonBombDraw, r1.Reason)
		require.True(t, m.Bombs.Used(Human))
		require.True(t, m.Bombs.Used(Bot))
	})

	t.Run("invalid input wastes an otherwise winnable round", func(t *testing.T) {
		m := NewMatch(DefaultConfig())

		r1, err := m.SubmitRound("xyz", "rock")
		require.NoError(t, err)
		require.Equal(t, NoPlayer, r1.Winner)
		require.Equal(t, ReasonForfeit, r1.Reason,
			"Invalid input should waste the round even against a valid move")

		r2, err := m.SubmitRound("paper", "paper")
		require.NoError(t, err)
		require.Equal(t, ReasonEqual, r2.Reason)

		r3, err := m.SubmitRound("bomb", "scissors")
		require.NoError(t, err)
		require.Equal(t, Human, r3.Winner)
		require.Equal(t, ReasonBombBeats, r3.Reason)

		require.True(t, m.Complete())
		require.Equal(t, 1, m.Score(Human))
		require.Equal(t, 0, m.Score(Bot))
		require.Equal(t, Human, m.Winner())
	})

	t.Run("all draws is a drawn match", func(t *testing.T) {
		m := NewMatch(DefaultConfig())
		for i := 0; i < 3; i++ {
			m.SubmitRound("scissors", "scissors")
		}
		require.True(t, m.Complete())
		require.Equal(t, NoPlayer, m.Winner(), "0-0 should be a drawn match")
	})
}

func TestFormatScore(t *testing.T) {
	m := NewMatch(DefaultConfig())
	require.Equal(t, "You 0 - 0 Bot", FormatScore(m))
	m.SubmitRound("rock", "scissors")
	require.Equal(t, "You 1 - 0 Bot", FormatScore(m))
}
