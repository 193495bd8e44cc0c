package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// Cache key prefixes for the aircraft registry cache.
const (
	CachePrefixAircraft     = "aircraft:"
	CachePrefixAircraftList = "aircraft_list"
)
