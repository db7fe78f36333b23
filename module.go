package strata

import "go.uber.org/fx"

// Module returns an Fx module that provides a *Loader built with opts and
// the resolved configuration mapping loaded from file. Combine with
// Provider to decode sections of the mapping into typed structs.
func Module(file string, opts ...Option) fx.Option {
	return fx.Module("strata",
		fx.Provide(
			func() *Loader {
				return New(opts...)
			},
			func(loader *Loader) (map[string]any, error) {
				return loader.LoadFile(file, nil)
			},
		),
	)
}
