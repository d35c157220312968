package battleship

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the subset of *log.Logger the game components write to.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

var _ Logger = (*log.Logger)(nil)

func DiscardLogger() Logger {
	return log.New(io.Discard)
}
