package session

import "errors"

// Decoding errors.  The options themselves never fail; these are only
// returned when reading options off the wire.
var (
	ErrInvalidTraffic    = errors.New("SESSION:INVALID_TRAFFIC")
	ErrInvalidProximity  = errors.New("SESSION:INVALID_PROXIMITY")
	ErrInvalidTransports = errors.New("SESSION:INVALID_TRANSPORTS")
)
