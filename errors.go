package strata

import "errors"

// ErrInvalidConfigReference is returned when a "config" key (or one of its
// elements) holds a value that is not a string, sequence, or mapping.
var ErrInvalidConfigReference = errors.New("config reference must be a string, sequence, or mapping")

// ErrCyclicReference is returned when a configuration file chain includes
// itself, directly or indirectly.
var ErrCyclicReference = errors.New("cyclic config reference")

// ErrNotMapping is returned when a loaded configuration file does not
// contain a mapping at the top level.
var ErrNotMapping = errors.New("configuration file does not contain a mapping")

// ErrUsage is returned when a raw command-line value appears before any
// --name flag.
var ErrUsage = errors.New("general arguments must follow a --name flag")
