// Package scanner defines the capability contract the file-validation host
// instantiates its resolution pipeline with, plus mock implementations for
// tests and examples.
package scanner

import (
	"context"
	"io"
)

// Result is the outcome of scanning a single file.
type Result struct {
	Clean  bool
	Detail string
}

// Scanner is the capability contract a file scanner implementation must
// satisfy to be pluggable into the host.
type Scanner interface {
	Scan(ctx context.Context, name string, r io.Reader) (*Result, error)
}
