package hostlib

import (
	"errors"
	"fmt"
	"reflect"
)

// Build runs the full resolution pipeline for a descriptor: resolve the
// registered type, check the capability contract, materialize options, and
// construct the instance. It runs synchronously during startup; any failure
// aborts with a typed error and nothing is registered.
func Build[C any](r *Registry[C], d *Descriptor[C]) (C, error) {
	var zero C

	if d == nil {
		return zero, fmt.Errorf("nil scanner descriptor")
	}

	if d.hasInstance {
		instance, ok := d.instance.(C)
		if !ok || isNilValue(d.instance) {
			return zero, &ContractNotSatisfiedError{
				TypeName: typeName(d.instance),
				Contract: contractName[C](),
			}
		}
		return instance, nil
	}

	reg, err := d.resolve(r)
	if err != nil {
		return zero, err
	}

	options, err := materializeOptions(r, d, reg)
	if err != nil {
		return zero, err
	}

	instance, err := reg.construct(options)
	if err != nil {
		var constructionErr *ConstructionFailedError
		var missingErr *OptionsTypeMissingError
		if errors.As(err, &constructionErr) || errors.As(err, &missingErr) {
			return zero, err
		}
		return zero, &ConstructionFailedError{Name: reg.name, Err: err}
	}

	// A factory satisfies the contract statically yet can still hand back a
	// typed nil at runtime. Re-check before registering anything.
	if isNilValue(instance) {
		return zero, &ContractNotSatisfiedError{
			TypeName: reg.name,
			Contract: contractName[C](),
		}
	}

	return instance, nil
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}

func contractName[C any]() string {
	return reflect.TypeFor[C]().String()
}
