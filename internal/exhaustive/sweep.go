// Package exhaustive sweeps every (lhs, rhs) byte pair through a predicate,
// sharded across a small worker pool. It is the property-testing
// counterpart of the teacher's ExhaustiveCheck / WorkerPool machinery
// (pkg/search/verifier.go and pkg/search/worker.go in the retrieval pack),
// which proved two instruction sequences equivalent by sweeping every
// register input rather than sampling a handful of cases. Here the same
// exhaustive-sweep idiom proves ALU invariants hold over their full input
// space instead of proving sequence equivalence.
package exhaustive

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Failure describes one counterexample found during a sweep.
type Failure struct {
	Lhs, Rhs byte
	Message  string
}

func (f Failure) String() string {
	return fmt.Sprintf("lhs=%#02x rhs=%#02x: %s", f.Lhs, f.Rhs, f.Message)
}

// progressInterval is how often the reporter goroutine ticks, mirroring the
// teacher's WorkerPool.RunTasks progress reporter (pkg/search/worker.go),
// just on a much shorter period since an ALU sweep finishes in well under a
// second rather than the hours a sequence search runs for.
const progressInterval = 200 * time.Millisecond

// reportProgress runs a time.Ticker-driven progress line the same way the
// teacher's RunTasks does (elapsed time, checks-so-far, throughput), and
// prints a final summary line once done is closed. total is the number of
// checks the sweep will perform in all; checked is updated by the workers.
func reportProgress(label string, total int64, checked *atomic.Int64, done <-chan struct{}) {
	start := time.Now()
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	var lastChecked int64
	lastTime := start
	for {
		select {
		case <-done:
			elapsed := time.Since(start)
			n := checked.Load()
			rate := float64(n) / elapsed.Seconds()
			fmt.Printf("  [%s] %s: %d/%d checks (100.0%%) | %.1fM checks/s avg | DONE\n",
				elapsed.Round(time.Millisecond), label, n, total, rate/1e6)
			return
		case now := <-ticker.C:
			n := checked.Load()
			elapsed := now.Sub(start)
			dt := now.Sub(lastTime).Seconds()
			rate := float64(n-lastChecked) / dt
			lastChecked = n
			lastTime = now
			pct := float64(n) / float64(total) * 100
			fmt.Printf("  [%s] %s: %d/%d checks (%.1f%%) | %.1fM checks/s\n",
				elapsed.Round(time.Millisecond), label, n, total, pct, rate/1e6)
		}
	}
}

// Pairs sweeps every (lhs, rhs) in [0,256)x[0,256) through check, sharded
// across NumWorkers goroutines (0 = runtime.NumCPU()), with a ticked
// progress reporter the way the teacher's WorkerPool.RunTasks reports
// search throughput. check returns a non-empty message describing the
// violation, or "" if the input passes. All failures are collected and
// returned; a nil/empty result means the invariant held over the full
// 65536-input space.
func Pairs(numWorkers int, check func(lhs, rhs byte) string) []Failure {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	type shard struct {
		lhsStart, lhsEnd int
	}

	shards := make([]shard, 0, numWorkers)
	chunk := (256 + numWorkers - 1) / numWorkers
	for start := 0; start < 256; start += chunk {
		end := start + chunk
		if end > 256 {
			end = 256
		}
		shards = append(shards, shard{lhsStart: start, lhsEnd: end})
	}

	var checked atomic.Int64
	done := make(chan struct{})
	go reportProgress("pairs", 256*256, &checked, done)

	results := make([][]Failure, len(shards))
	var wg sync.WaitGroup
	for i, sh := range shards {
		wg.Add(1)
		go func(i int, sh shard) {
			defer wg.Done()
			var local []Failure
			for lhs := sh.lhsStart; lhs < sh.lhsEnd; lhs++ {
				for rhs := 0; rhs < 256; rhs++ {
					checked.Add(1)
					if msg := check(byte(lhs), byte(rhs)); msg != "" {
						local = append(local, Failure{Lhs: byte(lhs), Rhs: byte(rhs), Message: msg})
					}
				}
			}
			results[i] = local
		}(i, sh)
	}
	wg.Wait()
	close(done)

	var all []Failure
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// Bytes sweeps every byte value [0,256) through check, single-dimensional.
func Bytes(check func(v byte) string) []Failure {
	var all []Failure
	for v := 0; v < 256; v++ {
		if msg := check(byte(v)); msg != "" {
			all = append(all, Failure{Lhs: byte(v), Message: msg})
		}
	}
	return all
}
