package domain

import "errors"

// ErrInvalidConfig is returned when a widget is constructed with a configuration
// that violates its contract (e.g. a non-positive number of stars).
var ErrInvalidConfig = errors.New("invalid widget config")

// ErrWidgetNotFound is returned when a widget ID cannot be found in a registry.
var ErrWidgetNotFound = errors.New("widget not found")

// ErrPresetNotFound is returned when a preset ID cannot be found in a catalog.
var ErrPresetNotFound = errors.New("preset not found")
