package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/sensitivewords/internal/client/client"
	"github.com/mitchellh/cli"
	"golang.org/x/term"
)

// Success indicates a successful command execution.
const Success int = 0

const (
	// FlagParseError indicates the command could not parse its flags or arguments.
	FlagParseError int = iota + 16

	// RunError indicates the API call failed.
	RunError
)

// API is the subset of the HTTP client the commands use.
type API interface {
	Sanitize(ctx context.Context, message string) (*client.SanitizeResult, error)
	ListWords(ctx context.Context, activeOnly bool) ([]client.Word, error)
	GetWord(ctx context.Context, id string) (*client.Word, error)
	CreateWord(ctx context.Context, word string) (string, error)
	UpdateWord(ctx context.Context, id string, upd client.WordUpdate) error
	SetActive(ctx context.Context, id string, active bool) error
	DeleteWord(ctx context.Context, id string) error
	ImportWords(ctx context.Context, words []string) (int, error)
	Stats(ctx context.Context, operationType string) ([]client.Stat, error)
	ResetStats(ctx context.Context) (string, error)
	Health(ctx context.Context, probe string) (*client.HealthReport, error)
	Metrics(ctx context.Context) (*client.Metrics, error)
}

// Meta is shared by every command.
type Meta struct {
	Ctx   context.Context
	Ui    cli.Ui
	API   API
	Stdin io.Reader
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// stdinIsTerminal reports whether m.Stdin is an interactive terminal. Readers
// that are not files (pipes in tests) never are.
func (m *Meta) stdinIsTerminal() bool {
	f, ok := m.Stdin.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}

// fail prints err and returns RunError.
func (m *Meta) fail(err error) int {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		m.Ui.Error("Server unavailable: " + err.Error())
	default:
		m.Ui.Error("Error: " + err.Error())
	}
	return RunError
}
