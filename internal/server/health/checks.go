package health

import (
	"context"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseCheck pings the database. It is tagged "db" so that readiness
// probes pick it up.
func DatabaseCheck(name string, db Pinger, timeout time.Duration) Check {
	return Check{
		Name:    name,
		Tags:    []string{"db", "sql", name},
		Timeout: timeout,
		Fn:      db.PingContext,
	}
}

// APICheck always succeeds while the process is able to answer.
func APICheck() Check {
	return Check{
		Name: "api",
		Tags: []string{"api"},
		Fn:   func(context.Context) error { return nil },
	}
}
