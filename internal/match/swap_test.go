package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/models"
)

func listing(id string, current models.SpecificDormInfo, desired models.DesiredDormInfo) models.Listing {
	return models.Listing{
		ID:          id,
		ContactInfo: "@" + id,
		CurrentDorm: current,
		DesiredDorm: desired,
		CreatedAt:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestIsMutualMatchSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Listing
	}{
		{
			name: "both open",
			a:    listing("a", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired()),
			b:    listing("b", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired()),
		},
		{
			name: "one sided",
			a:    listing("a", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired()),
			b: listing("b", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), models.DesiredDormInfo{
				Gender: models.Exactly(models.GenderMale),
			}),
		},
		{
			name: "incompatible",
			a: listing("a", room(models.GenderMale, models.CampusWest, models.CapacityOne, false), models.DesiredDormInfo{
				Campus: models.Exactly(models.CampusMain),
			}),
			b: listing("b", room(models.GenderFemale, models.CampusWest, models.CapacityTwo, true), models.DesiredDormInfo{
				Campus: models.Exactly(models.CampusWest),
			}),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, IsMutualMatch(tc.a, tc.b), IsMutualMatch(tc.b, tc.a))
		})
	}
}

// Scenario: A accepts anything but B demands a room A does not have.
func TestMatchesForRejectsOneSidedInterest(t *testing.T) {
	a := listing("a", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired())
	b := listing("b", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), models.DesiredDormInfo{
		Gender:   models.Exactly(models.GenderMale),
		Campus:   models.Exactly(models.CampusWest),
		Capacity: models.Exactly(models.CapacityOne),
		BunkBed:  models.Exactly(false),
	})

	assert.Empty(t, MatchesFor(a, []models.Listing{b}))
	assert.Empty(t, MatchesFor(b, []models.Listing{a}))
}

// Scenario: both parties accept anything and hold acceptable rooms.
func TestMatchesForMutualAcceptance(t *testing.T) {
	a := listing("a", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired())
	b := listing("b", room(models.GenderFemale, models.CampusMain, models.CapacityTwo, true), anyDesired())

	matches := MatchesFor(a, []models.Listing{b})
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)
}

func TestMatchesForExcludesSelfAndKeepsInputOrder(t *testing.T) {
	open := anyDesired()
	me := listing("me", room(models.GenderMale, models.CampusMain, models.CapacityTwo, false), open)
	newest := listing("newest", room(models.GenderMale, models.CampusWest, models.CapacityThree, false), open)
	older := listing("older", room(models.GenderMale, models.CampusMain, models.CapacityTwo, true), open)
	closed := listing("closed", room(models.GenderMale, models.CampusMain, models.CapacityTwo, false), models.DesiredDormInfo{
		BunkBed: models.Exactly(true),
	})

	matches := MatchesFor(me, []models.Listing{newest, me, closed, older})
	require.Len(t, matches, 2)
	assert.Equal(t, "newest", matches[0].ID)
	assert.Equal(t, "older", matches[1].ID)
}

func located(id string, currentCampus models.Campus, currentBuilding, currentRoom string, desiredCampus models.Campus, desiredBuilding, desiredRoom string) models.Listing {
	l := listing(id, room(models.GenderMale, currentCampus, models.CapacityTwo, false), models.DesiredDormInfo{
		Campus:     models.Exactly(desiredCampus),
		Building:   desiredBuilding,
		RoomNumber: desiredRoom,
	})
	l.OptionalRoomDetails = &models.RoomDetails{Building: currentBuilding, RoomNumber: currentRoom}
	return l
}

func TestExactSwapPairsBidirectionalLocationEquality(t *testing.T) {
	a := located("a", models.CampusMain, "A", "101", models.CampusWest, "B", "202")
	b := located("b", models.CampusWest, "B", "202", models.CampusMain, "A", "101")
	// c wants a's room but a does not want c's room.
	c := located("c", models.CampusWest, "C", "303", models.CampusMain, "A", "101")

	pairs := ExactSwapPairs([]models.Listing{a, b, c})
	require.Len(t, pairs, 1)
	assert.Equal(t, "a", pairs[0].First.ID)
	assert.Equal(t, "b", pairs[0].Second.ID)
}

func TestExactSwapPairsGreedyFirstFound(t *testing.T) {
	// b and c are interchangeable partners for a; the earlier one wins and
	// each listing joins at most one pair.
	a := located("a", models.CampusMain, "A", "101", models.CampusWest, "B", "202")
	b := located("b", models.CampusWest, "B", "202", models.CampusMain, "A", "101")
	c := located("c", models.CampusWest, "B", "202", models.CampusMain, "A", "101")

	pairs := ExactSwapPairs([]models.Listing{a, b, c})
	require.Len(t, pairs, 1)
	assert.Equal(t, "a", pairs[0].First.ID)
	assert.Equal(t, "b", pairs[0].Second.ID)
}

func TestExactSwapPairsWildcardCampusNeverPairs(t *testing.T) {
	a := listing("a", room(models.GenderMale, models.CampusMain, models.CapacityTwo, false), anyDesired())
	b := listing("b", room(models.GenderMale, models.CampusWest, models.CapacityTwo, false), anyDesired())

	assert.Empty(t, ExactSwapPairs([]models.Listing{a, b}))
}

func TestExactSwapPairsAbsentDetailsCompareEqual(t *testing.T) {
	// Neither side states a building or room; campuses mirror each other.
	a := listing("a", room(models.GenderMale, models.CampusMain, models.CapacityTwo, false), models.DesiredDormInfo{
		Campus: models.Exactly(models.CampusWest),
	})
	b := listing("b", room(models.GenderFemale, models.CampusWest, models.CapacityFour, true), models.DesiredDormInfo{
		Campus: models.Exactly(models.CampusMain),
	})

	pairs := ExactSwapPairs([]models.Listing{a, b})
	require.Len(t, pairs, 1)
}
