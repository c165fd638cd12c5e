package host

import (
	"log/slog"

	hostlib "github.com/scangate-dev/scangate-host-sdk"
)

// Option defines a functional option for configuring the Host.
type Option[C any] func(*Host[C])

// WithLogger sets the logger.
func WithLogger[C any](l *slog.Logger) Option[C] {
	return func(h *Host[C]) {
		h.logger = l
	}
}

// WithDescriptor overrides the scanner section from settings with a
// programmatic descriptor.
func WithDescriptor[C any](d *hostlib.Descriptor[C]) Option[C] {
	return func(h *Host[C]) {
		h.descriptor = d
	}
}
