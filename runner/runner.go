// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package runner

import (
	"runtime"
	"sync"

	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/rcv"
)

// Outcome is the result of tabulating one race: either a RaceResult or
// the validation/engine error that stopped it. Metadata is always set
// so failures can be reported by race name.
type Outcome struct {
	Metadata models.RaceMetadata
	Result   *models.RaceResult
	Err      error
}

// Run tabulates every race and returns one Outcome per race, in input
// order. Races are independent computations with no shared state, so
// they are dispatched to a pool of workers; a failure in one race never
// affects the others. workers < 1 means one worker per CPU.
func Run(races []models.RaceData, mode rcv.RoundMode, workers int) []Outcome {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(races) {
		workers = len(races)
	}

	outcomes := make([]Outcome, len(races))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := rcv.Tabulate(races[i], mode)
				outcomes[i] = Outcome{
					Metadata: races[i].Metadata,
					Result:   result,
					Err:      err,
				}
			}
		}()
	}

	for i := range races {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
