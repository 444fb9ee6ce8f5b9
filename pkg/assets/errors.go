// Package assets reads shader sources and decodes texture images from disk.
//
// Failures here are never fatal to a demo: callers log the returned
// ResourceError and keep going with whatever partial result they got.
package assets

import (
	"errors"
	"fmt"
)

// ResourceError reports a non-fatal failure to load a resource
type ResourceError struct {
	Op   string // "read", "decode", "compile", "link"
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// IsResourceError reports whether err is, or wraps, a ResourceError
func IsResourceError(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}
