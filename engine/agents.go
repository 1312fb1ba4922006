package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/searcher"
)

// MinimaxAgent plays the strongest move a fixed-depth alpha-beta search can
// find. It always maximizes the interest of the side to move.
type MinimaxAgent struct {
	name    string
	minimax *searcher.Minimax
}

func NewMinimaxAgent(depth int) *MinimaxAgent {
	return &MinimaxAgent{
		name: fmt.Sprintf("minimax-d%d", depth),
		minimax: searcher.NewMinimax(
			searcher.WithDepth(depth),
			searcher.WithCollector(searcher.NewCollector()),
		),
	}
}

func (a *MinimaxAgent) Name() string {
	return a.name
}

func (a *MinimaxAgent) ChooseMove(s game.State) (*chess.Move, searcher.SearchMetrics, error) {
	maximizing := s.Turn() == chess.White
	move, ok := a.minimax.FindBestMove(s, maximizing)
	metrics := a.minimax.LastMetrics()
	if !ok {
		return nil, metrics, nil
	}
	log.Debug().
		Str("agent", a.name).
		Str("move", move.String()).
		Int64("nodes", metrics.Nodes).
		Int64("cutoffs", metrics.Cutoffs).
		Dur("took", metrics.Duration).
		Msg("search complete")
	return move, metrics, nil
}

// RandomAgent plays a uniformly random legal move. Useful as a baseline
// opponent in tests and benchmarks.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string {
	return "random"
}

func (a *RandomAgent) ChooseMove(s game.State) (*chess.Move, searcher.SearchMetrics, error) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.SearchMetrics{}, nil
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetrics{}, nil
}

// HumanAgent reads moves in UCI or SAN notation from an input stream. It
// understands resign/quit/exit and history commands, and enforces an
// optional per-move time limit (zero disables the limit).
type HumanAgent struct {
	name      string
	scanner   *bufio.Scanner
	out       io.Writer
	timeLimit time.Duration
	history   func() []string
}

func NewHumanAgent(name string, in io.Reader, out io.Writer, timeLimit time.Duration) *HumanAgent {
	return &HumanAgent{
		name:      name,
		scanner:   bufio.NewScanner(in),
		out:       out,
		timeLimit: timeLimit,
	}
}

// WithHistory registers the callback that backs the history command.
func (a *HumanAgent) WithHistory(fn func() []string) *HumanAgent {
	a.history = fn
	return a
}

func (a *HumanAgent) Name() string {
	return a.name
}

func (a *HumanAgent) ChooseMove(s game.State) (*chess.Move, searcher.SearchMetrics, error) {
	parser, ok := s.(interface {
		ParseMove(text string) (*chess.Move, error)
	})
	if !ok {
		return nil, searcher.SearchMetrics{}, errors.New("engine: state does not support notation parsing")
	}

	for {
		a.prompt(s)
		line, err := a.readLine()
		if err != nil {
			return nil, searcher.SearchMetrics{}, err
		}
		text := strings.TrimSpace(line)
		switch strings.ToLower(text) {
		case "":
			continue
		case "resign", "quit", "exit":
			return nil, searcher.SearchMetrics{}, ErrResigned
		case "history":
			a.printHistory()
			continue
		}
		move, err := parser.ParseMove(text)
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		return move, searcher.SearchMetrics{}, nil
	}
}

func (a *HumanAgent) prompt(s game.State) {
	if a.timeLimit > 0 {
		fmt.Fprintf(a.out, "%s to move (%s per move). Enter a move like e2e4 or Nf3: ",
			s.Turn().Name(), a.timeLimit)
		return
	}
	fmt.Fprintf(a.out, "%s to move. Enter a move like e2e4 or Nf3: ", s.Turn().Name())
}

func (a *HumanAgent) printHistory() {
	if a.history == nil {
		return
	}
	moves := a.history()
	if len(moves) == 0 {
		fmt.Fprintln(a.out, "no moves yet")
		return
	}
	for i := 0; i < len(moves); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			line += " " + moves[i+1]
		}
		fmt.Fprintln(a.out, line)
	}
}

// readLine reads one line, racing the time limit. The read itself happens in
// a goroutine because a blocked Scan cannot be interrupted.
func (a *HumanAgent) readLine() (string, error) {
	lines := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		if a.scanner.Scan() {
			lines <- a.scanner.Text()
			return
		}
		if err := a.scanner.Err(); err != nil {
			errs <- err
			return
		}
		errs <- io.EOF
	}()

	if a.timeLimit <= 0 {
		select {
		case line := <-lines:
			return line, nil
		case err := <-errs:
			return "", err
		}
	}
	select {
	case line := <-lines:
		return line, nil
	case err := <-errs:
		return "", err
	case <-time.After(a.timeLimit):
		return "", ErrTimeout
	}
}
