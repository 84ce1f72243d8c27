package main

import (
	"io"

	"go.uber.org/zap"
)

// Emitter writes status lines for the bar. Each line goes out in a single
// unbuffered write so a reader on the other end of the pipe sees it at once.
type Emitter struct {
	w      io.Writer
	logger *zap.Logger
}

func NewEmitter(w io.Writer, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{w: w, logger: logger}
}

// Line writes s followed by a newline.
func (e *Emitter) Line(s string) {
	if _, err := io.WriteString(e.w, s+"\n"); err != nil {
		e.logger.Debug("Error writing status line", zap.Error(err))
	}
}
