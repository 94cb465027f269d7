package metrics

import (
	"errors"
	"fmt"
	"os"
)

// Family identifies one metric reader.
type Family string

const (
	FamilyOverview  Family = "overview"
	FamilyCPU       Family = "cpu"
	FamilyMemory    Family = "memory"
	FamilyDisk      Family = "disk"
	FamilyNetwork   Family = "network"
	FamilyTemps     Family = "temperatures"
	FamilyProcesses Family = "processes"
	FamilyBattery   Family = "battery"
)

// Reader failure kinds. Matched with errors.Is.
var (
	ErrUnavailable      = errors.New("metric unavailable")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnsupported      = errors.New("unsupported on this platform")
)

// ReaderError wraps a failure of one metric family. One family failing
// never aborts the snapshot; the aggregator records the family as
// degraded and keeps going.
type ReaderError struct {
	Family Family
	Err    error
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("%s reader: %v", e.Family, e.Err)
}

func (e *ReaderError) Unwrap() error { return e.Err }

// readerErr classifies err into the failure taxonomy and tags it with
// the failing family.
func readerErr(family Family, err error) *ReaderError {
	switch {
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrUnsupported):
		// Already classified.
	case errors.Is(err, os.ErrPermission):
		err = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &ReaderError{Family: family, Err: err}
}
