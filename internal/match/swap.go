package match

import (
	"time"

	"github.com/yurtswap/yurtswap-api/internal/models"
)

// IsMutualMatch reports whether each party's current room satisfies the
// other's desired criteria. The relation is symmetric: swapping the
// arguments never changes the result.
func IsMutualMatch(a, b models.Listing) bool {
	return Satisfies(a.CurrentDorm, b.DesiredDorm) && Satisfies(b.CurrentDorm, a.DesiredDorm)
}

// MatchesFor returns every listing in all that mutually matches me,
// excluding me itself by id. Input order is preserved; the collection is
// typically supplied newest-first and results are presented that way.
func MatchesFor(me models.Listing, all []models.Listing) []models.Listing {
	matches := make([]models.Listing, 0)
	for _, other := range all {
		if other.ID == me.ID {
			continue
		}
		if IsMutualMatch(me, other) {
			matches = append(matches, other)
		}
	}
	return matches
}

// location is the physical identity of a room used by the exact-swap
// report. Absent parts stay empty and compare equal to absent.
type location struct {
	campus     string
	building   string
	roomNumber string
}

// currentLocation derives where a listing's owner lives today: campus
// from the current dorm, building and room from the optional details.
func currentLocation(l models.Listing) location {
	loc := location{campus: string(l.CurrentDorm.Campus)}
	if l.OptionalRoomDetails != nil {
		loc.building = l.OptionalRoomDetails.Building
		loc.roomNumber = l.OptionalRoomDetails.RoomNumber
	}
	return loc
}

// desiredLocation derives where a listing's owner wants to live. A
// wildcard campus yields a sentinel that never equals a real campus, so
// "anywhere" listings are never reported as exact pairs.
func desiredLocation(l models.Listing) location {
	loc := location{
		campus:     "any",
		building:   l.DesiredDorm.Building,
		roomNumber: l.DesiredDorm.RoomNumber,
	}
	if l.DesiredDorm.Campus.Mode == models.ConstraintExactly {
		loc.campus = string(l.DesiredDorm.Campus.Value)
	}
	return loc
}

// ExactSwapPairs identifies listings that have already found each other:
// each party's desired location equals the other's current location,
// compared on campus, building and room number. Pairing is greedy over
// unordered (i, j) pairs in input order; a listing joins at most one
// reported pair and a listing with several exact candidates is paired
// with whichever one appears first.
func ExactSwapPairs(all []models.Listing) []models.SwapPair {
	pairs := make([]models.SwapPair, 0)
	consumed := make(map[string]struct{}, len(all))
	now := time.Now().UTC()

	for i := 0; i < len(all); i++ {
		if _, done := consumed[all[i].ID]; done {
			continue
		}
		for j := i + 1; j < len(all); j++ {
			if _, done := consumed[all[j].ID]; done {
				continue
			}
			if desiredLocation(all[i]) != currentLocation(all[j]) ||
				desiredLocation(all[j]) != currentLocation(all[i]) {
				continue
			}
			pairs = append(pairs, models.SwapPair{
				First:     swapParty(all[i]),
				Second:    swapParty(all[j]),
				MatchedAt: now,
			})
			consumed[all[i].ID] = struct{}{}
			consumed[all[j].ID] = struct{}{}
			break
		}
	}
	return pairs
}

func swapParty(l models.Listing) models.SwapParty {
	return models.SwapParty{
		ID:          l.ID,
		ContactInfo: l.ContactInfo,
		CurrentDorm: l.CurrentDorm,
		DesiredDorm: l.DesiredDorm,
	}
}
