package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/25lmmc1065/chess-game/engine"
	"github.com/25lmmc1065/chess-game/experiments/metrics"
	"github.com/25lmmc1065/chess-game/game"
	"github.com/25lmmc1065/chess-game/meta"
)

const NumGames = meta.BENCH_GAMES // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment pits each search depth against the default-depth
// baseline and records per-game and per-move search statistics.
func RunDepthExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.SEARCH_DEPTH}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, NumGames)

			outcome, gameMetric, moveMetrics := runGame(config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s by %s", mi+1, len(matchUps), i+1, outcome.Winner.Name(), outcome.Method)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two search configurations.
func runGame(config1, config2 metrics.AgentConfig) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	white := engine.NewMinimaxAgent(config1.Depth)
	black := engine.NewMinimaxAgent(config2.Depth)
	e := engine.LocalEngine(game.NewPosition(), white, black)

	start := time.Now()
	outcome, gameMetrics, err := e.Run()
	if err != nil {
		panic(fmt.Sprintf("failed to run game: %v", err))
	}
	end := time.Now()

	moveMetrics := make([]metrics.MoveMetric, len(gameMetrics))
	for i, mm := range gameMetrics {
		moveMetrics[i] = metrics.MoveMetric{
			Ply:      mm.Ply,
			Player:   mm.Player.Name(),
			Depth:    mm.Depth,
			Nodes:    mm.Nodes,
			Cutoffs:  mm.Cutoffs,
			Duration: mm.Duration,
		}
	}

	gameMetric := metrics.GameMetric{
		Winner:     outcome.Winner.Name(),
		Method:     outcome.Method,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: len(gameMetrics),
	}

	return outcome, gameMetric, moveMetrics
}
