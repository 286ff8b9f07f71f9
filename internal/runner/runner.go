// Package runner executes drills scenarios and forwards their output.
// Runs are sequential; each one is stamped with a UUIDv7 run ID that
// appears in the debug logs and in the returned Result.
package runner

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// Catalog resolves scenarios by name.
type Catalog interface {
	Lookup(name string) (types.Scenario, error)
	All() []types.Scenario
}

// Result records one scenario execution.
type Result struct {
	Scenario string   `json:"scenario"`
	RunID    string   `json:"run_id"`
	Lines    []string `json:"lines"`
}

// Runner invokes scenarios from a Catalog.
type Runner struct {
	catalog Catalog
	logger  *zap.Logger
	newID   func() (uuid.UUID, error)
}

// New creates a Runner. A nil logger disables logging.
func New(catalog Catalog, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		catalog: catalog,
		logger:  logger,
		newID:   uuid.NewV7,
	}
}

// Run executes the scenario registered under name and writes its output
// to out. Nothing is written if the scenario fails.
func (r *Runner) Run(name string, out io.Writer) (Result, error) {
	s, err := r.catalog.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return r.run(s, out)
}

// RunNames runs each named scenario in order. Every name is resolved
// before any scenario runs, so an unknown name produces no output.
func (r *Runner) RunNames(names []string, out io.Writer) ([]Result, error) {
	resolved := make([]types.Scenario, 0, len(names))
	for _, name := range names {
		s, err := r.catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, s)
	}
	return r.runEach(resolved, out)
}

// RunAll runs every scenario in catalog order.
func (r *Runner) RunAll(out io.Writer) ([]Result, error) {
	return r.runEach(r.catalog.All(), out)
}

func (r *Runner) runEach(list []types.Scenario, out io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(list))
	for _, s := range list {
		res, err := r.run(s, out)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) run(s types.Scenario, out io.Writer) (Result, error) {
	id, err := r.newID()
	if err != nil {
		return Result{}, fmt.Errorf("generate run id: %w", err)
	}
	log := r.logger.With(zap.String("scenario", s.Name()), zap.String("run_id", id.String()))
	log.Debug("scenario started", zap.String("input", s.Input()))

	var buf bytes.Buffer
	if err := s.Run(&buf); err != nil {
		log.Warn("scenario failed", zap.Error(err))
		return Result{}, fmt.Errorf("run %s: %w", s.Name(), err)
	}

	if out != nil {
		if _, err := out.Write(buf.Bytes()); err != nil {
			return Result{}, fmt.Errorf("write %s output: %w", s.Name(), err)
		}
	}

	res := Result{
		Scenario: s.Name(),
		RunID:    id.String(),
		Lines:    splitLines(buf.String()),
	}
	log.Debug("scenario finished", zap.Int("lines", len(res.Lines)))
	return res, nil
}

// splitLines splits newline-terminated output into lines.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
