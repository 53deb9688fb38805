package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter writes every chunk to all of its writers, also when some of them fail.
// A write succeeds as long as one writer took all of it; the other failures are still reported.
type TeeWriter struct {
	writers []io.Writer
}

func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{writers: writers}
}

func (tw *TeeWriter) Write(p []byte) (int, error) {
	var errs error
	accepted := false
	for _, w := range tw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		accepted = true
	}

	if !accepted {
		return 0, errs
	}
	return len(p), errs
}
