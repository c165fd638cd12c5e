package scanner

import (
	"context"
	"fmt"
	"io"
)

// MockScannerOptions configures MockScanner.
type MockScannerOptions struct {
	OptionA string `json:"OptionA" yaml:"OptionA"`
	OptionB int    `json:"OptionB" yaml:"OptionB"`
}

// MockScanner is a configurable scanner for tests and examples.
type MockScanner struct {
	Options MockScannerOptions
}

// NewMockScanner constructs a MockScanner from its options.
func NewMockScanner(opts MockScannerOptions) (*MockScanner, error) {
	return &MockScanner{Options: opts}, nil
}

func (m *MockScanner) Scan(ctx context.Context, name string, r io.Reader) (*Result, error) {
	return &Result{Clean: true, Detail: fmt.Sprintf("mock scan of %s", name)}, nil
}

// PlainScanner declares no options type.
type PlainScanner struct{}

// NewPlainScanner constructs a PlainScanner.
func NewPlainScanner() (*PlainScanner, error) {
	return &PlainScanner{}, nil
}

func (p *PlainScanner) Scan(ctx context.Context, name string, r io.Reader) (*Result, error) {
	return &Result{Clean: true}, nil
}

// NopScanner accepts every file. Useful as a pre-built instance.
type NopScanner struct{}

func (n *NopScanner) Scan(ctx context.Context, name string, r io.Reader) (*Result, error) {
	return &Result{Clean: true, Detail: "nop"}, nil
}
