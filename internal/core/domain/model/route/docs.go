// Package route provides the event and candidate types of the route planning
// domain. An Event is a point on the axis where an action happens (start, end,
// pickup, drop); a Candidate is a partial or complete ordered sequence of
// events together with the vehicle cargo state it implies. Candidates expose
// the legality rule that drives the exhaustive route expansion: which of the
// not-yet-visited events the vehicle may lawfully visit next.
package route
