package engine

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a mutation is rejected because a document is
// mid-extraction or mid-translation.
var ErrBusy = errors.New("a document is currently being processed")

// ErrUnknownDocument is returned for operations on an ID not in the queue.
var ErrUnknownDocument = errors.New("unknown document")

// FailureKind names the stage a pipeline failure belongs to.
type FailureKind string

const (
	LoadFailure        FailureKind = "load"
	ExtractionFailure  FailureKind = "extraction"
	TranslationFailure FailureKind = "translation"
	ExportFailure      FailureKind = "export"
)

// Failure wraps a stage error with its kind. Load and extraction failures
// stop the owning document; translation failures are logged per page and the
// document continues.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s failure: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func failure(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}
