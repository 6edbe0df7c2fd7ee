package datasource

import "errors"

var (
	// ErrLiveSourceUnavailable is returned by the live source until real integrations exist.
	ErrLiveSourceUnavailable = errors.New("live data source is not available")

	// ErrUnknownSource is returned for an unrecognised source mode.
	ErrUnknownSource = errors.New("unknown data source")
)
