package domain

import "errors"

// ErrNotFound is returned by backends when a device, zone or flow does not exist.
var ErrNotFound = errors.New("not found")

// ErrNotConnected is returned when no controller session has been established.
var ErrNotConnected = errors.New("not connected")

// ErrUnsupported is returned when the connected controller lacks an optional feature.
var ErrUnsupported = errors.New("not supported by this controller")
