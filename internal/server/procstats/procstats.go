// Package procstats samples resource usage of the running server process.
package procstats

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Metrics is a point-in-time view of the process.
type Metrics struct {
	Timestamp      time.Time `json:"timestamp"`
	Uptime         string    `json:"uptime"`
	UptimeSeconds  float64   `json:"uptimeSeconds"`
	MemoryUsageMB  uint64    `json:"memoryUsageMB"`
	CPUTimeSeconds float64   `json:"cpuTimeSeconds"`
	ThreadCount    int32     `json:"threadCount"`
}

// Sampler reads Metrics for one process.
type Sampler struct {
	proc *process.Process
}

// NewSampler returns a Sampler for the current process.
func NewSampler() (*Sampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open process: %w", err)
	}
	return &Sampler{proc: p}, nil
}

func (s *Sampler) Sample(ctx context.Context) (Metrics, error) {
	now := time.Now().UTC()

	mem, err := s.proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("memory info: %w", err)
	}
	times, err := s.proc.TimesWithContext(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("cpu times: %w", err)
	}
	threads, err := s.proc.NumThreadsWithContext(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("threads: %w", err)
	}
	createdMs, err := s.proc.CreateTimeWithContext(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("create time: %w", err)
	}

	uptime := now.Sub(time.UnixMilli(createdMs)).Round(time.Millisecond)
	if uptime < 0 {
		uptime = 0
	}

	return Metrics{
		Timestamp:      now,
		Uptime:         uptime.String(),
		UptimeSeconds:  uptime.Seconds(),
		MemoryUsageMB:  mem.RSS / 1024 / 1024,
		CPUTimeSeconds: times.User + times.System,
		ThreadCount:    threads,
	}, nil
}
