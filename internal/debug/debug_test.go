package debug

import (
	"strings"
	"testing"
	"time"
)

func TestProbeStop(t *testing.T) {
	p := Start()
	buf := make([]byte, 1<<20)
	buf[0] = 1
	s := p.Stop()
	if s.HeapAlloc == 0 || s.TotalAlloc < s.HeapAlloc {
		t.Errorf("Stop() = %+v, want nonzero heap within total", s)
	}
	if s.Elapsed < 0 {
		t.Errorf("Elapsed = %v", s.Elapsed)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Elapsed: 1234 * time.Microsecond, HeapAlloc: 3 << 20, TotalAlloc: 10 << 20, NumGC: 2}
	got := s.String()
	want := "took 1ms, mem 3.00 MiB (total 10.00 MiB, 2 GCs)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Stats{}.String(), "took 0s") {
		t.Errorf("zero Stats = %q", Stats{}.String())
	}
}
