package events

import "log/slog"

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*registry)

// WithLogger sets the logger used for channel attach/detach diagnostics.
//
// Parameters:
//   - logger: the logger (nil keeps slog.Default())
//
// Returns:
//   - RegistryOption: option function to apply
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
