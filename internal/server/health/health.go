// Package health runs named readiness/liveness checks and aggregates their
// results into a single report shared by the HTTP and gRPC transports.
package health

import (
	"context"
	"slices"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "Healthy"
	StatusUnhealthy Status = "Unhealthy"
)

const defaultTimeout = 3 * time.Second

// Check is a single named probe. Fn reports a problem by returning an error.
type Check struct {
	Name    string
	Tags    []string
	Timeout time.Duration
	Fn      func(ctx context.Context) error
}

type Entry struct {
	Status      Status   `json:"status"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
}

type Report struct {
	Status        Status           `json:"status"`
	TotalDuration string           `json:"totalDuration"`
	Entries       map[string]Entry `json:"entries"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Checker holds the registered checks. It is safe for concurrent use once
// all checks are registered.
type Checker struct {
	checks []Check
}

func NewChecker(checks ...Check) *Checker {
	c := &Checker{}
	for _, ch := range checks {
		c.Register(ch)
	}
	return c
}

// Register adds check. A zero timeout becomes the default.
func (c *Checker) Register(check Check) {
	if check.Timeout <= 0 {
		check.Timeout = defaultTimeout
	}
	c.checks = append(c.checks, check)
}

// Run executes, in parallel, every check carrying at least one of tags (all
// checks when tags is empty). The report is unhealthy if any check failed.
func (c *Checker) Run(ctx context.Context, tags ...string) Report {
	start := time.Now()

	selected := make([]Check, 0, len(c.checks))
	for _, ch := range c.checks {
		if matches(ch.Tags, tags) {
			selected = append(selected, ch)
		}
	}

	entries := make([]Entry, len(selected))
	var wg sync.WaitGroup
	for i, ch := range selected {
		i, ch := i, ch
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries[i] = run(ctx, ch)
		}()
	}
	wg.Wait()

	rep := Report{
		Status:  StatusHealthy,
		Entries: make(map[string]Entry, len(selected)),
	}
	for i, ch := range selected {
		rep.Entries[ch.Name] = entries[i]
		if entries[i].Status != StatusHealthy {
			rep.Status = StatusUnhealthy
		}
	}
	rep.TotalDuration = time.Since(start).String()
	return rep
}

func run(ctx context.Context, ch Check) Entry {
	ctx, cancel := context.WithTimeout(ctx, ch.Timeout)
	defer cancel()

	tags := ch.Tags
	if tags == nil {
		tags = []string{}
	}

	start := time.Now()
	err := ch.Fn(ctx)
	e := Entry{
		Status:   StatusHealthy,
		Duration: time.Since(start).String(),
		Tags:     tags,
	}
	if err != nil {
		e.Status = StatusUnhealthy
		e.Description = err.Error()
	}
	return e
}

func matches(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, t := range want {
		if slices.Contains(have, t) {
			return true
		}
	}
	return false
}
