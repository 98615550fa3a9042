package debug

import (
	"fmt"
	"runtime"
	"time"
)

// Stats is a snapshot of process counters worth reporting after a command in debug mode.
type Stats struct {
	Elapsed    time.Duration
	HeapAlloc  uint64 // bytes
	TotalAlloc uint64 // bytes, cumulative
	NumGC      uint32
}

// Probe measures one command run. Start it right before the work and call Stop after.
type Probe struct {
	start time.Time
}

// Start returns a running Probe.
func Start() *Probe {
	return &Probe{start: time.Now()}
}

// Stop reads the runtime memory statistics and returns them with the time since Start.
func (p *Probe) Stop() Stats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Stats{
		Elapsed:    time.Since(p.start),
		HeapAlloc:  ms.HeapAlloc,
		TotalAlloc: ms.TotalAlloc,
		NumGC:      ms.NumGC,
	}
}

// String formats s for a log line, e.g. "took 12ms, mem 3.20 MiB (total 9.75 MiB, 2 GCs)".
func (s Stats) String() string {
	return fmt.Sprintf("took %s, mem %.2f MiB (total %.2f MiB, %d GCs)",
		s.Elapsed.Round(time.Millisecond), mib(s.HeapAlloc), mib(s.TotalAlloc), s.NumGC)
}

func mib(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
