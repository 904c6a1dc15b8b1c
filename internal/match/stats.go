package match

import "github.com/yurtswap/yurtswap-api/internal/models"

// ComputeRoomStats reduces the listing snapshot to per-category counts of
// the published current rooms. Every enumerated gender, campus and
// capacity value is present in its breakdown even at count zero.
func ComputeRoomStats(listings []models.Listing) models.RoomStats {
	genderCounts := make(map[models.Gender]int, 2)
	campusCounts := make(map[models.Campus]int, 2)
	capacityCounts := make(map[models.Capacity]int, 5)
	withBunk := 0

	for _, listing := range listings {
		room := listing.CurrentDorm
		genderCounts[room.Gender]++
		campusCounts[room.Campus]++
		capacityCounts[room.Capacity]++
		if room.BunkBed {
			withBunk++
		}
	}

	stats := models.RoomStats{
		TotalRooms:          len(listings),
		RoomsByGender:       make([]models.GenderCount, 0, 2),
		RoomsByCampus:       make([]models.CampusCount, 0, 2),
		RoomsByCapacity:     make([]models.CapacityCount, 0, 5),
		RoomsWithBunkBed:    withBunk,
		RoomsWithoutBunkBed: len(listings) - withBunk,
	}
	for _, gender := range models.GenderValues() {
		stats.RoomsByGender = append(stats.RoomsByGender, models.GenderCount{Gender: gender, Count: genderCounts[gender]})
	}
	for _, campus := range models.CampusValues() {
		stats.RoomsByCampus = append(stats.RoomsByCampus, models.CampusCount{Campus: campus, Count: campusCounts[campus]})
	}
	for _, capacity := range models.CapacityValues() {
		stats.RoomsByCapacity = append(stats.RoomsByCapacity, models.CapacityCount{Capacity: capacity, Count: capacityCounts[capacity]})
	}
	return stats
}

// ComputeRoommateStats reduces the search snapshot to campus and building
// counts. Campus coverage is zero-filled over the closed set; building
// keys are open-ended and only appear when referenced, in first-seen
// order. RecentSearches carries the snapshot itself, which arrives
// newest-first from the store.
func ComputeRoommateStats(searches []models.RoommateSearch) models.RoommateStats {
	campusCounts := make(map[models.Campus]int, 2)
	buildingCounts := make(map[string]int)
	buildingOrder := make([]string, 0)

	for _, search := range searches {
		campusCounts[search.Campus]++
		if _, seen := buildingCounts[search.Building]; !seen {
			buildingOrder = append(buildingOrder, search.Building)
		}
		buildingCounts[search.Building]++
	}

	stats := models.RoommateStats{
		TotalRoommateSearches: len(searches),
		SearchesByCampus:      make([]models.CampusCount, 0, 2),
		SearchesByBuilding:    make([]models.BuildingCount, 0, len(buildingOrder)),
		RecentSearches:        searches,
	}
	for _, campus := range models.CampusValues() {
		stats.SearchesByCampus = append(stats.SearchesByCampus, models.CampusCount{Campus: campus, Count: campusCounts[campus]})
	}
	for _, building := range buildingOrder {
		stats.SearchesByBuilding = append(stats.SearchesByBuilding, models.BuildingCount{Building: building, Count: buildingCounts[building]})
	}
	return stats
}

// SwapSummary runs the exact-swap pairing and wraps it with its total.
func SwapSummary(listings []models.Listing) models.SwapMatchSummary {
	pairs := ExactSwapPairs(listings)
	return models.SwapMatchSummary{TotalMatches: len(pairs), MatchedPairs: pairs}
}

// RoommateSummary reports the co-occupancy groups of size two or more
// along with the total people across them.
func RoommateSummary(searches []models.RoommateSearch) models.RoommateMatchSummary {
	matched := MatchedRooms(GroupByRoom(searches))
	people := 0
	for _, group := range matched {
		people += group.PeopleCount
	}
	return models.RoommateMatchSummary{
		TotalMatches:       len(matched),
		TotalPeopleMatched: people,
		MatchedRooms:       matched,
	}
}
