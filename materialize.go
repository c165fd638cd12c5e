package hostlib

import (
	"encoding/json"

	"github.com/go-viper/mapstructure/v2"
)

// materializeOptions produces the options value handed to the factory.
// Precedence: a pre-built value is used verbatim, even when a subtree is also
// present; otherwise a subtree is bound onto a default-constructed value of
// the declared options type; otherwise there are no options (nil).
func materializeOptions[C any](r *Registry[C], d *Descriptor[C], reg *registration[C]) (any, error) {
	if d.options != nil {
		if reg.optionsType == nil {
			return nil, &OptionsTypeMissingError{Name: reg.name}
		}
		return d.options, nil
	}

	if d.config == nil {
		return nil, nil
	}

	if reg.optionsType == nil {
		return nil, &OptionsTypeMissingError{Name: reg.name}
	}

	if r.strict {
		if err := validateSubtree(reg, d.config); err != nil {
			return nil, err
		}
	}

	target := reg.newOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &OptionsBindingFailedError{Name: reg.name, Err: err}
	}
	if err := decoder.Decode(d.config); err != nil {
		return nil, &OptionsBindingFailedError{Name: reg.name, Err: err}
	}
	return target, nil
}

// validateSubtree checks a raw configuration subtree against the compiled
// options schema. The subtree is round-tripped through JSON so the schema
// sees exactly the value shapes encoding/json produces.
func validateSubtree[C any](reg *registration[C], config map[string]any) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return &OptionsBindingFailedError{Name: reg.name, Err: err}
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &OptionsBindingFailedError{Name: reg.name, Err: err}
	}

	if err := reg.schema.Validate(v); err != nil {
		return &OptionsBindingFailedError{Name: reg.name, Err: err}
	}
	return nil
}
