package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Components prefix their own messages ("Component: message"); Prefix tags the whole process.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
	Clock  string `config:"LOG_CLOCK" default:"utc"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(il.Prefix, il.Clock != "local"))
	return ctx, nil
}

// NewLogger creates the process logger writing to stdout. A prefix of "-" means no prefix.
func NewLogger(prefix string, utc bool) *log.Logger {
	if prefix == "-" {
		prefix = ""
	}
	flags := log.LstdFlags | log.Lmsgprefix
	if utc {
		flags |= log.LUTC
	}
	return log.New(os.Stdout, prefix, flags)
}
