package worker

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/animalchess-go/internal/config"
	"github.com/lgbarn/animalchess-go/internal/processing"
)

// ReplayFunc returns a ProcessFunc that replays each item with cfg.
func ReplayFunc(cfg *config.Config, logger logrus.FieldLogger) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		var res processing.Result
		if item.Script != nil {
			res = processing.Replay(item.Script, cfg, logger)
		} else {
			res = processing.ReplayFile(item.Path, cfg, logger)
		}
		return ProcessResult{Index: item.Index, Result: res}
	}
}

// ReplayAll replays items on cfg.Workers goroutines and returns the results
// in input order. With cfg.StopOnError, items after the earliest failing
// one are skipped and left out of the results.
func ReplayAll(items []WorkItem, cfg *config.Config, logger logrus.FieldLogger) []processing.Result {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var firstFailure atomic.Int64
	firstFailure.Store(math.MaxInt64)
	replay := ReplayFunc(cfg, logger)
	process := func(item WorkItem) ProcessResult {
		if cfg.StopOnError && int64(item.Index) > firstFailure.Load() {
			return ProcessResult{Index: item.Index, skipped: true}
		}
		r := replay(item)
		if r.Result.Err != nil {
			for {
				cur := firstFailure.Load()
				if int64(item.Index) >= cur || firstFailure.CompareAndSwap(cur, int64(item.Index)) {
					break
				}
			}
		}
		return r
	}

	pool := NewPool(process, WithWorkers(cfg.Workers), WithBufferSize(len(items)))
	pool.Start()
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	var collected []ProcessResult
	for r := range pool.Results() {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})

	out := make([]processing.Result, 0, len(collected))
	for _, r := range collected {
		if r.skipped || (cfg.StopOnError && int64(r.Index) > firstFailure.Load()) {
			continue
		}
		out = append(out, r.Result)
	}
	return out
}
