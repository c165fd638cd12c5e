package hostlib

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure patterns in the resolution pipeline.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrUnresolvableType is returned when a scanner type name does not map
	// to any registered implementation.
	ErrUnresolvableType = errors.New("unresolvable scanner type")

	// ErrContractNotSatisfied is returned when a resolved or constructed
	// value does not satisfy the capability contract.
	ErrContractNotSatisfied = errors.New("capability contract not satisfied")

	// ErrOptionsTypeMissing is returned when options are supplied for an
	// implementation that declares no options type to bind into.
	ErrOptionsTypeMissing = errors.New("options type missing")

	// ErrOptionsBindingFailed is returned when a raw configuration subtree
	// cannot be bound onto the declared options type.
	ErrOptionsBindingFailed = errors.New("options binding failed")

	// ErrConstructionFailed is returned when the implementation cannot be
	// constructed from the materialized options.
	ErrConstructionFailed = errors.New("scanner construction failed")
)

// UnresolvableTypeError indicates the descriptor names an unknown scanner
// type, or one whose registered version does not satisfy the constraint.
type UnresolvableTypeError struct {
	Name       string
	Constraint string
}

func (e *UnresolvableTypeError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("unresolvable scanner type %q: registered version does not satisfy constraint %q", e.Name, e.Constraint)
	}
	return fmt.Sprintf("unresolvable scanner type %q", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *UnresolvableTypeError) Is(target error) bool {
	return target == ErrUnresolvableType
}

// ContractNotSatisfiedError names the type that fails the capability contract.
type ContractNotSatisfiedError struct {
	TypeName string
	Contract string
}

func (e *ContractNotSatisfiedError) Error() string {
	return fmt.Sprintf("type %s does not satisfy capability contract %s", e.TypeName, e.Contract)
}

// Is implements error matching for errors.Is() checks.
func (e *ContractNotSatisfiedError) Is(target error) bool {
	return target == ErrContractNotSatisfied
}

// OptionsTypeMissingError indicates options were supplied for a scanner type
// registered without a declared options type.
type OptionsTypeMissingError struct {
	Name string
}

func (e *OptionsTypeMissingError) Error() string {
	return fmt.Sprintf("scanner type %q declares no options type but options were supplied", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *OptionsTypeMissingError) Is(target error) bool {
	return target == ErrOptionsTypeMissing
}

// OptionsBindingFailedError indicates a raw configuration subtree could not
// be bound onto the declared options type. The wrapped error names the
// offending keys.
type OptionsBindingFailedError struct {
	Name string
	Err  error
}

func (e *OptionsBindingFailedError) Error() string {
	return fmt.Sprintf("binding options for scanner type %q failed: %v", e.Name, e.Err)
}

func (e *OptionsBindingFailedError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
func (e *OptionsBindingFailedError) Is(target error) bool {
	return target == ErrOptionsBindingFailed
}

// ConstructionFailedError indicates the factory had no usable shape for the
// supplied options or failed outright.
type ConstructionFailedError struct {
	Name string
	Err  error
}

func (e *ConstructionFailedError) Error() string {
	return fmt.Sprintf("construction of scanner type %q failed: %v", e.Name, e.Err)
}

func (e *ConstructionFailedError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
func (e *ConstructionFailedError) Is(target error) bool {
	return target == ErrConstructionFailed
}
