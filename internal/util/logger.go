package util

import (
	"fmt"
	"time"
)

// ProgressLogger prints coarse progress for long batch conversions.
// It is meant for interactive terminals; updates are throttled and
// rendered with a carriage return on a single line.
type ProgressLogger struct {
	total      uint64
	prefix     string
	done       uint64
	step       uint64
	nextReport uint64
	enabled    bool
	start      time.Time
	lastUpdate time.Time
}

// NewProgressLogger creates a progress logger for total events. Progress is
// reported in 5% steps, or 1% steps for very large batches.
func NewProgressLogger(total uint64, prefix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		total:   total,
		prefix:  prefix,
		enabled: enable,
		start:   time.Now(),
	}
	fraction := uint64(20)
	if total >= 100_000_000 {
		fraction = 100
	}
	pl.step = (total + fraction - 1) / fraction
	if pl.step == 0 {
		pl.step = 1
	}
	if enable {
		pl.nextReport = pl.step
	} else {
		pl.nextReport = ^uint64(0)
	}
	return pl
}

// Log records one completed event and prints when a report step is reached.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.done++
	if pl.done >= pl.nextReport {
		pl.update(false)
		pl.nextReport += pl.step
		if pl.nextReport > pl.total {
			pl.nextReport = pl.total
		}
	}
}

// Finalize prints the 100% line with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.done = pl.total
	pl.update(true)
}

func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.total > 0 {
		perc = 100 * pl.done / pl.total
	}
	if final {
		fmt.Printf("\r%s%d%% (%.2fs)\n", pl.prefix, perc, time.Since(pl.start).Seconds())
		return
	}
	now := time.Now()
	if now.Sub(pl.lastUpdate) > 100*time.Millisecond {
		fmt.Printf("\r%s%d%%", pl.prefix, perc)
		pl.lastUpdate = now
	}
}
