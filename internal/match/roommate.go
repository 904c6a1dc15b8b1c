package match

import "github.com/yurtswap/yurtswap-api/internal/models"

// GroupByRoom partitions searches by their (campus, building, room) key.
// Building and room number are compared as stored; normalization happens
// at write time. Groups appear in the order their key was first seen and
// members keep input order, so repeated calls over the same snapshot
// yield identical membership. Group size is unbounded.
func GroupByRoom(searches []models.RoommateSearch) []models.RoomGroup {
	type roomKey struct {
		campus     models.Campus
		building   string
		roomNumber string
	}
	index := make(map[roomKey]int, len(searches))
	groups := make([]models.RoomGroup, 0)

	for _, search := range searches {
		key := roomKey{campus: search.Campus, building: search.Building, roomNumber: search.RoomNumber}
		at, seen := index[key]
		if !seen {
			at = len(groups)
			index[key] = at
			groups = append(groups, models.RoomGroup{
				Campus:     search.Campus,
				Building:   search.Building,
				RoomNumber: search.RoomNumber,
			})
		}
		groups[at].People = append(groups[at].People, search)
		groups[at].PeopleCount++
	}
	return groups
}

// MatchedRooms filters the grouping down to rooms claimed by at least two
// people. The partition and the filter stay separate steps so callers can
// compose either.
func MatchedRooms(groups []models.RoomGroup) []models.RoomGroup {
	matched := make([]models.RoomGroup, 0)
	for _, group := range groups {
		if group.PeopleCount >= 2 {
			matched = append(matched, group)
		}
	}
	return matched
}
