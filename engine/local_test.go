package engine

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/searcher"
)

// scriptedAgent replays a fixed move list, then returns err (nil means no
// move found).
type scriptedAgent struct {
	name  string
	moves []string
	err   error
	next  int
}

func (a *scriptedAgent) Name() string {
	return a.name
}

func (a *scriptedAgent) ChooseMove(s game.State) (*chess.Move, searcher.SearchMetrics, error) {
	if a.next >= len(a.moves) {
		return nil, searcher.SearchMetrics{}, a.err
	}
	parser := s.(interface {
		ParseMove(text string) (*chess.Move, error)
	})
	move, err := parser.ParseMove(a.moves[a.next])
	if err != nil {
		return nil, searcher.SearchMetrics{}, err
	}
	a.next++
	return move, searcher.SearchMetrics{}, nil
}

func TestEngineCheckmateEndsGame(t *testing.T) {
	white := &scriptedAgent{name: "white", moves: []string{"f3", "g4"}}
	black := &scriptedAgent{name: "black", moves: []string{"e5", "Qh4#"}}
	e := LocalEngine(game.NewPosition(), white, black)

	outcome, gameMetrics, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, chess.Black, outcome.Winner)
	require.Equal(t, MethodCheckmate, outcome.Method)
	require.False(t, outcome.Draw())
	require.Equal(t, []string{"f3", "e5", "g4", "Qh4#"}, e.History())
	require.Len(t, gameMetrics, 4)
	require.Equal(t, 1, gameMetrics[0].Ply)
	require.Equal(t, chess.White, gameMetrics[0].Player)
}

func TestEngineResignation(t *testing.T) {
	white := &scriptedAgent{name: "white", err: ErrResigned}
	black := &scriptedAgent{name: "black"}
	e := LocalEngine(game.NewPosition(), white, black)

	outcome, _, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, chess.Black, outcome.Winner)
	require.Equal(t, MethodResignation, outcome.Method)
}

func TestEngineTimeout(t *testing.T) {
	white := &scriptedAgent{name: "white", moves: []string{"e4"}}
	black := &scriptedAgent{name: "black", err: ErrTimeout}
	e := LocalEngine(game.NewPosition(), white, black)

	outcome, _, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, chess.White, outcome.Winner)
	require.Equal(t, MethodTimeout, outcome.Method)
}

func TestEngineMoveLimit(t *testing.T) {
	white := &scriptedAgent{name: "white", moves: []string{"Nf3", "Ng1"}}
	black := &scriptedAgent{name: "black", moves: []string{"Nf6", "Ng8"}}
	e := LocalEngine(game.NewPosition(), white, black, WithMaxPlies(4))

	outcome, gameMetrics, err := e.Run()

	require.NoError(t, err)
	require.True(t, outcome.Draw())
	require.Equal(t, MethodMoveLimit, outcome.Method)
	require.Len(t, gameMetrics, 4)
}

func TestEngineCapturedPieces(t *testing.T) {
	t.Run("plain capture", func(t *testing.T) {
		white := &scriptedAgent{name: "white", moves: []string{"e4", "exd5"}}
		black := &scriptedAgent{name: "black", moves: []string{"d5", "Nf6"}}
		e := LocalEngine(game.NewPosition(), white, black, WithMaxPlies(4))

		_, _, err := e.Run()

		require.NoError(t, err)
		require.Empty(t, e.Captured(chess.White))
		require.Len(t, e.Captured(chess.Black), 1)
		require.Equal(t, chess.BlackPawn, e.Captured(chess.Black)[0])
	})

	t.Run("en passant", func(t *testing.T) {
		initial, err := game.PositionFromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
		require.NoError(t, err)
		white := &scriptedAgent{name: "white", moves: []string{"e5f6"}}
		black := &scriptedAgent{name: "black"}
		e := LocalEngine(initial, white, black, WithMaxPlies(1))

		_, _, err = e.Run()

		require.NoError(t, err)
		require.Len(t, e.Captured(chess.Black), 1)
		require.Equal(t, chess.BlackPawn, e.Captured(chess.Black)[0])
	})
}

func TestEngineDisplayCallback(t *testing.T) {
	var seen []string
	white := &scriptedAgent{name: "white", moves: []string{"e4"}}
	black := &scriptedAgent{name: "black", moves: []string{"e5"}}
	e := LocalEngine(game.NewPosition(), white, black,
		WithMaxPlies(2),
		WithDisplay(func(s game.State) {
			seen = append(seen, s.FEN())
		}))

	_, _, err := e.Run()

	require.NoError(t, err)
	require.Len(t, seen, 2)
	require.NotEqual(t, seen[0], seen[1])
}

func TestEngineMinimaxVersusRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("full game")
	}
	white := NewMinimaxAgent(1)
	black := NewRandomAgent(1)
	e := LocalEngine(game.NewPosition(), white, black, WithMaxPlies(120))

	outcome, gameMetrics, err := e.Run()

	require.NoError(t, err)
	require.NotEmpty(t, outcome.Method)
	require.Equal(t, len(e.History()), len(gameMetrics))
	for _, san := range e.History() {
		require.NotEmpty(t, san)
	}
}

func TestLocalEnginePanics(t *testing.T) {
	agent := &scriptedAgent{name: "a"}

	require.Panics(t, func() {
		LocalEngine(nil, agent, agent)
	})
	require.Panics(t, func() {
		LocalEngine(game.NewPosition(), nil, agent)
	})
	require.Panics(t, func() {
		LocalEngine(game.NewPosition(), agent, agent, WithMaxPlies(0))
	})
}
