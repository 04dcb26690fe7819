package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/cleitonmarx/symbiont/depend"
)

const appName = "todolists"

// NewLogger builds a leveled logger writing to w.
func NewLogger(w io.Writer, level string) (*charmLog.Logger, error) {
	lvl, err := charmLog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", level, err)
	}
	if w == nil {
		w = io.Discard
	}

	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           lvl,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	}), nil
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level string `config:"LOG_LEVEL" default:"info"`
}

// Initialize registers the leveled logger and its standard library adapter
// in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(os.Stdout, il.Level)
	if err != nil {
		return ctx, err
	}
	depend.Register(logger)
	depend.Register[*log.Logger](logger.StandardLog())
	return ctx, nil
}
