package scanner

import (
	"errors"
	"fmt"
)

// ErrScanFailed marks a directory that could not be enumerated.
// An empty directory is not a failure.
var ErrScanFailed = errors.New("scan failed")

// ScanError records the directory and the cause of a failed scan
type ScanError struct {
	Dir string
	Err error
}

// Error implements the error interface
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying error
func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is matches ErrScanFailed
func (e *ScanError) Is(target error) bool {
	return target == ErrScanFailed
}

// IsScanFailed reports whether err is a scan-level failure
func IsScanFailed(err error) bool {
	return errors.Is(err, ErrScanFailed)
}
