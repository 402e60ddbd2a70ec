package config

import "go.uber.org/fx"

// Module exposes configuration loader of the named service for fx graphs.
func Module(service string) fx.Option {
	return fx.Provide(func() (*Config, error) {
		return Load(service)
	})
}
