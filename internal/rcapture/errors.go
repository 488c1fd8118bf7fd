package rcapture

import "errors"

// ErrNoDisplay is returned when the OS graphics handle needed for a capture
// cannot be obtained (no display server reachable, device context refused).
var ErrNoDisplay = errors.New("no display available")

// ErrGeometryMismatch is returned when a raw frame's byte length is
// inconsistent with its claimed dimensions.
var ErrGeometryMismatch = errors.New("raw frame size does not match its dimensions")

// ErrUnsupportedConfiguration is returned for screen configurations whose
// pixel encoding the normalizer cannot interpret.
var ErrUnsupportedConfiguration = errors.New("unsupported screen configuration")
