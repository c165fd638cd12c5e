package hostlib

import (
	"sync"

	"github.com/scangate-dev/scangate-host-sdk/validation"
)

// Descriptor declares which scanner implementation a host should use and
// where its options come from: a pre-built options value, a raw
// configuration subtree to bind later, or nothing. A descriptor built from a
// live instance bypasses type resolution entirely.
//
// A descriptor is created once per scanner slot and consumed once by Build;
// it is not reused afterward.
type Descriptor[C any] struct {
	scannerType string
	constraint  string
	options     any
	config      map[string]any
	instance    any
	hasInstance bool

	mu       sync.Mutex
	resolved *registration[C]
}

// UseType declares a scanner by its registered type name.
func UseType[C any](name string) *Descriptor[C] {
	return &Descriptor[C]{scannerType: name}
}

// UseInstance declares a pre-built scanner instance. The value is checked
// against the capability contract at build time, so a non-conforming
// instance fails before the host starts serving.
func UseInstance[C any](instance any) *Descriptor[C] {
	return &Descriptor[C]{instance: instance, hasInstance: true}
}

// WithOptions attaches a pre-built options value. A pre-built value always
// takes precedence over a configuration subtree.
func (d *Descriptor[C]) WithOptions(options any) *Descriptor[C] {
	d.options = options
	return d
}

// WithConfig attaches a raw configuration subtree to bind onto the
// registered options type during resolution.
func (d *Descriptor[C]) WithConfig(config map[string]any) *Descriptor[C] {
	d.config = config
	return d
}

// WithConstraint requires the registered implementation version to satisfy a
// semver constraint.
func (d *Descriptor[C]) WithConstraint(constraint string) *Descriptor[C] {
	d.constraint = constraint
	return d
}

// ScannerType returns the declared type name, empty for instance descriptors.
func (d *Descriptor[C]) ScannerType() string {
	return d.scannerType
}

// FromSection builds a descriptor from a parsed scanner configuration
// section. A nil or empty section means no scanner is configured, a valid
// no-op state reported as a nil descriptor.
func FromSection[C any](section *validation.ScannerSection) *Descriptor[C] {
	if section == nil || section.ScannerType == "" {
		return nil
	}

	d := UseType[C](section.ScannerType)
	if section.Constraint != "" {
		d = d.WithConstraint(section.Constraint)
	}
	if len(section.Options) > 0 {
		d = d.WithConfig(section.Options)
	}
	return d
}

// resolve memoizes the registry lookup on the descriptor so repeated
// resolution is idempotent and cheap. Failures are not cached: resolving a
// bad name again re-fails identically with no side effects.
func (d *Descriptor[C]) resolve(r *Registry[C]) (*registration[C], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.resolved != nil {
		return d.resolved, nil
	}

	reg, err := r.lookup(d.scannerType, d.constraint)
	if err != nil {
		return nil, err
	}
	d.resolved = reg
	return reg, nil
}
