package perfo

import "fmt"

// ConfigError reports gap parameters that would erase paths entirely or
// produce no gaps at all. It is returned before any path is processed.
type ConfigError struct {
	Config GapConfig
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid gap configuration: length %g must be positive and spacing %g must exceed it", e.Config.Length, e.Config.Spacing)
}

// DiscontinuityError reports raw tracer output whose segments do not connect.
// Index is the segment that does not start at the previous segment's end
// point (zero for a closed path that does not return to its start), Gap the
// distance between the two points.
type DiscontinuityError struct {
	Index int
	Gap   float64
}

func (e *DiscontinuityError) Error() string {
	return fmt.Sprintf("discontinuous path: segment %d starts %g away from previous end point", e.Index, e.Gap)
}
