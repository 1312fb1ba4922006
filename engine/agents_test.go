package engine

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/25lmmc1065/chess-game/game"
)

func TestMinimaxAgentChoosesLegalMove(t *testing.T) {
	agent := NewMinimaxAgent(1)
	p := game.NewPosition()

	move, metrics, err := agent.ChooseMove(p)

	require.NoError(t, err)
	require.NotNil(t, move)
	require.Positive(t, metrics.Nodes)
	require.Contains(t, moveStrings(p), move.String())
}

func TestMinimaxAgentNoLegalMoves(t *testing.T) {
	p, err := game.PositionFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	agent := NewMinimaxAgent(2)

	move, _, err := agent.ChooseMove(p)

	require.NoError(t, err)
	require.Nil(t, move)
}

func TestRandomAgentChoosesLegalMove(t *testing.T) {
	agent := NewRandomAgent(42)
	p := game.NewPosition()

	for i := 0; i < 10; i++ {
		move, _, err := agent.ChooseMove(p)
		require.NoError(t, err)
		require.Contains(t, moveStrings(p), move.String())
	}
}

func TestHumanAgentPlaysMove(t *testing.T) {
	t.Run("uci", func(t *testing.T) {
		agent := NewHumanAgent("human", strings.NewReader("e2e4\n"), io.Discard, 0)

		move, _, err := agent.ChooseMove(game.NewPosition())

		require.NoError(t, err)
		require.Equal(t, "e2e4", move.String())
	})

	t.Run("san", func(t *testing.T) {
		agent := NewHumanAgent("human", strings.NewReader("Nf3\n"), io.Discard, 0)

		move, _, err := agent.ChooseMove(game.NewPosition())

		require.NoError(t, err)
		require.Equal(t, "g1f3", move.String())
	})
}

func TestHumanAgentRetriesAfterBadInput(t *testing.T) {
	out := &bytes.Buffer{}
	agent := NewHumanAgent("human", strings.NewReader("xyzzy\ne2e5\ne2e4\n"), out, 0)

	move, _, err := agent.ChooseMove(game.NewPosition())

	require.NoError(t, err)
	require.Equal(t, "e2e4", move.String())
	require.Contains(t, out.String(), "xyzzy")
}

func TestHumanAgentResigns(t *testing.T) {
	for _, command := range []string{"resign", "quit", "exit"} {
		agent := NewHumanAgent("human", strings.NewReader(command+"\n"), io.Discard, 0)

		_, _, err := agent.ChooseMove(game.NewPosition())

		require.ErrorIs(t, err, ErrResigned)
	}
}

func TestHumanAgentHistoryCommand(t *testing.T) {
	out := &bytes.Buffer{}
	agent := NewHumanAgent("human", strings.NewReader("history\ne2e4\n"), out, 0).
		WithHistory(func() []string {
			return []string{"d4", "d5", "c4"}
		})

	move, _, err := agent.ChooseMove(game.NewPosition())

	require.NoError(t, err)
	require.Equal(t, "e2e4", move.String())
	require.Contains(t, out.String(), "1. d4 d5")
	require.Contains(t, out.String(), "2. c4")
}

func TestHumanAgentTimesOut(t *testing.T) {
	// A pipe with no writer never yields a line.
	reader, _ := io.Pipe()
	agent := NewHumanAgent("human", reader, io.Discard, 20*time.Millisecond)

	_, _, err := agent.ChooseMove(game.NewPosition())

	require.ErrorIs(t, err, ErrTimeout)
}

func TestHumanAgentEOF(t *testing.T) {
	agent := NewHumanAgent("human", strings.NewReader(""), io.Discard, 0)

	_, _, err := agent.ChooseMove(game.NewPosition())

	require.ErrorIs(t, err, io.EOF)
}

func moveStrings(s game.State) []string {
	moves := s.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
