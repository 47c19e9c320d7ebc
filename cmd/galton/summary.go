package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/galton/engine"
)

// runSummary is printed on exit with -summary
type runSummary struct {
	Bins    int      `json:"bins"`
	Phase   string   `json:"phase"`
	Batches int      `json:"batchesCompleted"`
	Ticks   uint64   `json:"ticks"`
	Active  int      `json:"active"`
	Landed  uint64   `json:"landed"`
	Results []uint64 `json:"results"`
	Error   string   `json:"error,omitempty"`
}

func newRunSummary(s *engine.Session, runErr error) runSummary {
	b := s.Board()
	sum := runSummary{
		Bins:    b.ResultBins(),
		Phase:   s.Phase().String(),
		Batches: s.Batches(),
		Ticks:   s.Ticks(),
		Active:  b.ActiveCount(),
		Landed:  b.TotalResults(),
		Results: b.Results(),
	}
	if runErr != nil {
		sum.Error = runErr.Error()
	}
	return sum
}

func writeSummary(w io.Writer, sum runSummary) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
