package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics are per-search diagnostics. They are never consulted for
// pruning or limits.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Nodes     int64
	Cutoffs   int64
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	depth     int
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Depth:     c.depth,
		Nodes:     c.nodes.Load(),
		Cutoffs:   c.cutoffs.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (c *noCollector) Start(depth int)         {}
func (c *noCollector) AddNode()                {}
func (c *noCollector) AddCutoff()              {}
func (c *noCollector) Complete() SearchMetrics { return SearchMetrics{} }
