package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrIOFailure classifies errors raised by the underlying store.
	ErrIOFailure = errors.New("store io failure")
	// ErrNotSeeded is returned by the typed readers for an absent collection.
	ErrNotSeeded = errors.New("collection not seeded")
	// ErrNilStore is returned when an operation is given no store.
	ErrNilStore = errors.New("nil store")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindIO     ErrorKind = "io"
	KindEncode ErrorKind = "encode"
)

// OpError wraps a store error with the operation and key it happened on.
// Err is the store's error, unmodified.
type OpError struct {
	Op   string
	Kind ErrorKind
	Key  string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("fixture %s: %s", e.Op, e.Kind)
	if e.Key != "" {
		base += fmt.Sprintf(" (key=%s)", e.Key)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrIOFailure) hold for io-kind errors.
func (e *OpError) Is(target error) bool {
	return e != nil && target == ErrIOFailure && e.Kind == KindIO
}

// IsKind helps callers classify errors.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func ioError(op, key string, err error) error {
	return &OpError{Op: op, Kind: KindIO, Key: key, Err: err}
}
