package logging

import (
	"io"

	"go.uber.org/multierr"
)

// fanOutWriter writes every log line to all outputs. A failing output does
// not stop the others; their errors are combined.
type fanOutWriter []io.Writer

func (w fanOutWriter) Write(p []byte) (int, error) {
	var err error
	for _, out := range w {
		if _, werr := out.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return len(p), err
}
