// Package host wires settings finalization and scanner resolution into a
// single startup step and owns the singleton scanner handle.
package host

import (
	"fmt"
	"log/slog"

	hostlib "github.com/scangate-dev/scangate-host-sdk"
	"github.com/scangate-dev/scangate-host-sdk/validation"
)

// Host owns the finalized configuration and the singleton scanner instance
// for the lifetime of the application.
type Host[C any] struct {
	cfg        validation.Config
	handle     hostlib.Handle[C]
	descriptor *hostlib.Descriptor[C]
	logger     *slog.Logger
}

// New finalizes the settings and, when a scanner is configured, runs the
// full resolution pipeline. Every misconfiguration surfaces here, during
// startup, never at first use. Either the whole pipeline succeeds and the
// scanner is available, or nothing is registered.
func New[C any](settings validation.Settings, registry *hostlib.Registry[C], opts ...Option[C]) (*Host[C], error) {
	h := &Host[C]{logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}

	cfg, err := validation.Finalize(settings)
	if err != nil {
		return nil, fmt.Errorf("settings finalization failed: %w", err)
	}
	h.cfg = cfg

	descriptor := h.descriptor
	if descriptor == nil {
		descriptor = hostlib.FromSection[C](settings.Scanner)
	}
	if descriptor == nil {
		h.logger.Info("no scanner configured")
		return h, nil
	}

	if err := h.handle.Init(func() (C, error) {
		return hostlib.Build(registry, descriptor)
	}); err != nil {
		return nil, fmt.Errorf("scanner registration failed: %w", err)
	}

	h.logger.Info("scanner registered", "scanner_type", descriptor.ScannerType())
	return h, nil
}

// Config returns the finalized configuration.
func (h *Host[C]) Config() validation.Config {
	return h.cfg
}

// Scanner returns the singleton scanner instance. The second result is false
// when no scanner was configured.
func (h *Host[C]) Scanner() (C, bool) {
	return h.handle.Get()
}
