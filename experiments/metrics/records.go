package metrics

import "time"

// AgentConfig describes one search configuration under measurement.
type AgentConfig struct {
	ID    int
	Depth int
}

type GameMetric struct {
	Winner     string
	Method     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type MoveMetric struct {
	Ply      int
	Player   string
	Depth    int
	Nodes    int64
	Cutoffs  int64
	Duration time.Duration
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
