package ingest

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Source names which of the two inputs an error or issue belongs to.
type Source string

const (
	SourcePrimary   Source = "primary"   // district tallies
	SourceSecondary Source = "secondary" // eligible voters
)

var (
	// ErrSourceUnavailable matches any *SourceUnavailableError.
	ErrSourceUnavailable = eris.New("source unavailable")
	// ErrMalformedRecord matches any *MalformedRecordError.
	ErrMalformedRecord = eris.New("malformed record")
)

// SourceUnavailableError reports an input path that could not be opened.
type SourceUnavailableError struct {
	Which Source
	Path  string
	Err   error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("ingest: %s source %q unavailable: %v", e.Which, e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// MalformedRecordError reports a field of a source line that failed to parse.
type MalformedRecordError struct {
	Field  int // 0-based field index within the line
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("ingest: malformed record: field %d %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
