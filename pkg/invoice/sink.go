package invoice

import (
	"errors"
	"fmt"
	"io"
)

// ErrSinkBlocked is returned when a document surface cannot be opened. Its
// message is shown to the user as is.
var ErrSinkBlocked = errors.New("the invoice could not be opened: please allow pop-ups for this site and try again")

// DocumentSink is a surface a rendered document is written into, such as a
// new browser window or an HTTP response.
type DocumentSink interface {
	Open() (io.WriteCloser, error)
}

// Publish writes a complete document into a freshly opened sink. When the
// sink cannot be opened nothing is written and ErrSinkBlocked is returned.
func Publish(sink DocumentSink, doc string) error {
	if sink == nil {
		return ErrSinkBlocked
	}
	w, err := sink.Open()
	if err != nil || w == nil {
		return ErrSinkBlocked
	}

	if _, err := io.WriteString(w, doc); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write invoice document: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close invoice document: %w", err)
	}
	return nil
}
