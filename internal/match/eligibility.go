// Package match implements the swap eligibility predicate, the mutual and
// exact-swap matchers, the roommate room grouping, and the statistics
// reducers. Every function is pure and total over its arguments: no I/O,
// no shared state, fresh output on every call. Callers hand in a full
// snapshot of the listing or search collections and may invoke the
// package concurrently without locking.
package match

import "github.com/yurtswap/yurtswap-api/internal/models"

// Satisfies reports whether the concrete room is an acceptable match for
// the desired criteria. Attributes are evaluated independently and ANDed;
// no attribute can compensate for a mismatch on another. Unconstrained
// attributes always pass, and a "multiple" capacity selection with an
// empty allow-list degrades to unconstrained rather than failing.
func Satisfies(room models.SpecificDormInfo, desired models.DesiredDormInfo) bool {
	return desired.Gender.Allows(room.Gender) &&
		desired.Campus.Allows(room.Campus) &&
		desired.Capacity.Allows(room.Capacity) &&
		desired.BunkBed.Allows(room.BunkBed)
}
