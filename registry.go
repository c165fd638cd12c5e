// Package hostlib implements the extension-point resolution pipeline for
// pluggable scanners: an explicit type registry, declarative descriptors,
// options materialization from code or configuration, and exactly-once
// construction of the resulting capability instance.
package hostlib

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

// registration is the capability descriptor for one registered scanner type:
// its typed factory, the options type the factory consumes (nil when it
// consumes none), and the JSON schema generated from that type.
type registration[C any] struct {
	name        string
	version     *semver.Version
	optionsType reflect.Type
	newOptions  func() any
	construct   func(any) (C, error)
	schemaJSON  string
	schema      *santhosh.Schema
}

// Registry maps stable scanner type names to registered factories. It is
// generic over the capability contract C supplied by the embedding
// application.
type Registry[C any] struct {
	mu        sync.RWMutex
	entries   map[string]*registration[C]
	strict    bool
	reflector *jsonschema.Reflector
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	strict bool
}

// WithStrictOptions enables validation of raw option subtrees against the
// generated schema before binding. Strict registries reject unknown keys and
// mistyped values instead of coercing or ignoring them.
func WithStrictOptions(strict bool) RegistryOption {
	return func(c *registryConfig) {
		c.strict = strict
	}
}

// NewRegistry creates an empty scanner type registry.
func NewRegistry[C any](opts ...RegistryOption) *Registry[C] {
	cfg := registryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true
	reflector.RequiredFromJSONSchemaTags = true

	return &Registry[C]{
		entries:   make(map[string]*registration[C]),
		strict:    cfg.strict,
		reflector: reflector,
	}
}

// RegisterOption configures a single registration.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	version string
}

// WithVersion records the implementation version so descriptors can pin a
// semver constraint.
func WithVersion(version string) RegisterOption {
	return func(c *registerConfig) {
		c.version = version
	}
}

// Register adds a scanner factory that consumes an options value of type O.
// The options type is declared data here, not discovered by inspection: the
// registry derives its JSON schema at registration time and binds raw
// configuration subtrees onto it during resolution.
func Register[C, O any](r *Registry[C], name string, factory func(O) (C, error), opts ...RegisterOption) error {
	if factory == nil {
		return fmt.Errorf("nil factory for scanner type %q", name)
	}

	optionsType := reflect.TypeFor[O]()
	schemaJSON, schema, err := r.optionsSchemaFor(optionsType)
	if err != nil {
		return fmt.Errorf("registering scanner type %q: %w", name, err)
	}

	reg := &registration[C]{
		name:        name,
		optionsType: optionsType,
		newOptions:  func() any { return new(O) },
		schemaJSON:  schemaJSON,
		schema:      schema,
		construct: func(v any) (C, error) {
			if v == nil {
				var defaults O
				return factory(defaults)
			}
			if o, ok := v.(O); ok {
				return factory(o)
			}
			if p, ok := v.(*O); ok {
				return factory(*p)
			}
			var zero C
			return zero, &ConstructionFailedError{
				Name: name,
				Err:  fmt.Errorf("options value of type %T does not match declared type %s", v, optionsType),
			}
		},
	}

	return r.add(reg, opts)
}

// RegisterPlain adds a scanner factory that declares no options type.
// Supplying options or a configuration subtree for such a registration is a
// configuration error surfaced at build time.
func RegisterPlain[C any](r *Registry[C], name string, factory func() (C, error), opts ...RegisterOption) error {
	if factory == nil {
		return fmt.Errorf("nil factory for scanner type %q", name)
	}

	reg := &registration[C]{
		name: name,
		construct: func(v any) (C, error) {
			var zero C
			if v != nil {
				return zero, &OptionsTypeMissingError{Name: name}
			}
			return factory()
		},
	}

	return r.add(reg, opts)
}

func (r *Registry[C]) add(reg *registration[C], opts []RegisterOption) error {
	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.version != "" {
		v, err := semver.NewVersion(cfg.version)
		if err != nil {
			return fmt.Errorf("invalid version %q for scanner type %q: %w", cfg.version, reg.name, err)
		}
		reg.version = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[reg.name]; exists {
		return fmt.Errorf("scanner type already registered: %s", reg.name)
	}
	r.entries[reg.name] = reg
	return nil
}

// optionsSchemaFor generates and compiles the JSON schema for an options
// type. A schema that fails to compile is a registration bug, caught here.
func (r *Registry[C]) optionsSchemaFor(t reflect.Type) (string, *santhosh.Schema, error) {
	generated := r.reflector.ReflectFromType(t)
	raw, err := json.Marshal(generated)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}

	compiled, err := santhosh.CompileString(t.String()+".schema.json", string(raw))
	if err != nil {
		return "", nil, fmt.Errorf("failed to compile generated schema: %w", err)
	}
	return string(raw), compiled, nil
}

// lookup resolves a name (and optional semver constraint) to a registration.
func (r *Registry[C]) lookup(name, constraint string) (*registration[C], error) {
	r.mu.RLock()
	reg, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnresolvableTypeError{Name: name}
	}

	if constraint != "" {
		c, err := semver.NewConstraint(constraint)
		if err != nil {
			return nil, fmt.Errorf("invalid version constraint %q for scanner type %q: %w", constraint, name, err)
		}
		if reg.version == nil || !c.Check(reg.version) {
			return nil, &UnresolvableTypeError{Name: name, Constraint: constraint}
		}
	}

	return reg, nil
}

// List returns all registered scanner type names, sorted.
func (r *Registry[C]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OptionsSchema returns the generated JSON schema for a scanner type's
// options. The second result is false when the type is unknown or declares
// no options.
func (r *Registry[C]) OptionsSchema(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries[name]
	if !ok || reg.optionsType == nil {
		return "", false
	}
	return reg.schemaJSON, true
}
