package strata

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that loads and fully resolves the
// configuration file, decodes the merged mapping into target, sets
// defaults, and validates. The returned constructor takes a *Loader,
// which makes it Fx-friendly: provide a Loader to the container (see
// Module) and let the container call the provider.
func Provider[T any](target *T, file string) func(*Loader) (*T, error) {
	return func(loader *Loader) (*T, error) {
		resolved, err := loader.LoadFile(file, nil)
		if err != nil {
			return nil, fmt.Errorf("loading config error: %w", err)
		}

		data, err := yaml.Marshal(resolved)
		if err != nil {
			return nil, fmt.Errorf("encoding error: %w", err)
		}

		err = yaml.Unmarshal(data, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("file", file))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
