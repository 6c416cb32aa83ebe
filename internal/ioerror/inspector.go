package ioerror

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Inspector provides methods for analyzing storage backend errors.
type Inspector interface {
	// IsPermissionError returns true if the backend refused the access mode,
	// including writes to a handle opened read-only.
	IsPermissionError(err error) bool

	// IsNotFoundError returns true if the save file does not exist.
	IsNotFoundError(err error) bool

	// IsNoSpaceError returns true if the device or quota is full.
	IsNoSpaceError(err error) bool

	// IsClosedError returns true if the backend file was already closed.
	IsClosedError(err error) bool
}

// FSErrorInspector implements the Inspector interface by matching the
// messages produced by os, go-billy and common syscalls.
type FSErrorInspector struct{}

// NewInspector creates a new FSErrorInspector.
func NewInspector() Inspector {
	return &FSErrorInspector{}
}

// IsPermissionError checks if the error is a permission or access-mode error.
func (i *FSErrorInspector) IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "operation not permitted") ||
		strings.Contains(errStr, "read-only file system") ||
		strings.Contains(errStr, "bad file descriptor") ||
		strings.Contains(errStr, "write not supported") ||
		strings.Contains(errStr, "read not supported")
}

// IsNotFoundError checks if the error is a missing file error.
func (i *FSErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no such file") ||
		strings.Contains(errStr, "file does not exist") ||
		strings.Contains(errStr, "not a directory")
}

// IsNoSpaceError checks if the error is an out-of-space error.
func (i *FSErrorInspector) IsNoSpaceError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no space left") ||
		strings.Contains(errStr, "disk quota exceeded") ||
		strings.Contains(errStr, "file too large")
}

// IsClosedError checks if the error is a use-after-close error.
func (i *FSErrorInspector) IsClosedError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "file already closed") ||
		strings.Contains(errStr, "use of closed file")
}

// ErrorChainInspector wraps a base inspector and adds support for checking errors
// in the error chain using errors.Is and errors.As.
type ErrorChainInspector struct {
	base Inspector
}

// NewErrorChainInspector creates a new ErrorChainInspector that checks both
// the error chain and falls back to string-based inspection.
func NewErrorChainInspector(base Inspector) Inspector {
	return &ErrorChainInspector{base: base}
}

// IsPermissionError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsPermissionError(err error) bool {
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EBADF) || errors.Is(err, syscall.EROFS) {
		return true
	}
	var permErr interface{ IsPermissionError() bool }
	if errors.As(err, &permErr) && permErr.IsPermissionError() {
		return true
	}
	return e.base.IsPermissionError(err)
}

// IsNotFoundError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsNotFoundError(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	var notFoundErr interface{ IsNotFoundError() bool }
	if errors.As(err, &notFoundErr) && notFoundErr.IsNotFoundError() {
		return true
	}
	return e.base.IsNotFoundError(err)
}

// IsNoSpaceError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsNoSpaceError(err error) bool {
	if errors.Is(err, syscall.ENOSPC) {
		return true
	}
	var noSpaceErr interface{ IsNoSpaceError() bool }
	if errors.As(err, &noSpaceErr) && noSpaceErr.IsNoSpaceError() {
		return true
	}
	return e.base.IsNoSpaceError(err)
}

// IsClosedError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsClosedError(err error) bool {
	if errors.Is(err, fs.ErrClosed) {
		return true
	}
	return e.base.IsClosedError(err)
}
