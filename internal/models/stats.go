package models

import "time"

// GenderCount pairs a gender with how many rooms carry it.
type GenderCount struct {
	Gender Gender `json:"gender"`
	Count  int    `json:"count"`
}

// CampusCount pairs a campus with a record count.
type CampusCount struct {
	Campus Campus `json:"campus"`
	Count  int    `json:"count"`
}

// CapacityCount pairs a capacity with how many rooms carry it.
type CapacityCount struct {
	Capacity Capacity `json:"capacity"`
	Count    int      `json:"count"`
}

// BuildingCount pairs a building with how many searches reference it.
type BuildingCount struct {
	Building string `json:"building"`
	Count    int    `json:"count"`
}

// RoomStats aggregates the published current rooms by category. Every
// enumerated value appears in its breakdown even at count zero; chart
// rendering relies on complete category coverage.
type RoomStats struct {
	TotalRooms          int             `json:"totalRooms"`
	RoomsByGender       []GenderCount   `json:"roomsByGender"`
	RoomsByCampus       []CampusCount   `json:"roomsByCampus"`
	RoomsByCapacity     []CapacityCount `json:"roomsByCapacity"`
	RoomsWithBunkBed    int             `json:"roomsWithBunkBed"`
	RoomsWithoutBunkBed int             `json:"roomsWithoutBunkBed"`
}

// RoommateStats aggregates roommate searches. Campus counts are
// zero-filled over the closed campus set; building counts only carry
// buildings that actually appear since the key set is open-ended.
type RoommateStats struct {
	TotalRoommateSearches int              `json:"totalRoommateSearches"`
	SearchesByCampus      []CampusCount    `json:"searchesByCampus"`
	SearchesByBuilding    []BuildingCount  `json:"searchesByBuilding"`
	RecentSearches        []RoommateSearch `json:"recentSearches"`
}

// SwapParty is one side of an exact swap pair.
type SwapParty struct {
	ID          string           `json:"id"`
	ContactInfo string           `json:"contactInfo"`
	CurrentDorm SpecificDormInfo `json:"currentDorm"`
	DesiredDorm DesiredDormInfo  `json:"desiredDorm"`
}

// SwapPair reports two listings whose desired locations exactly mirror
// each other's current locations.
type SwapPair struct {
	First     SwapParty `json:"first"`
	Second    SwapParty `json:"second"`
	MatchedAt time.Time `json:"matchedAt"`
}

// SwapMatchSummary is the aggregate exact-swap report.
type SwapMatchSummary struct {
	TotalMatches int        `json:"totalMatches"`
	MatchedPairs []SwapPair `json:"matchedPairs"`
}

// RoomGroup is the set of roommate searches sharing one room key.
type RoomGroup struct {
	Campus      Campus           `json:"campus"`
	Building    string           `json:"building"`
	RoomNumber  string           `json:"roomNumber"`
	People      []RoommateSearch `json:"people"`
	PeopleCount int              `json:"peopleCount"`
}

// RoommateMatchSummary is the aggregate co-occupancy report over groups
// with at least two people.
type RoommateMatchSummary struct {
	TotalMatches       int         `json:"totalMatches"`
	TotalPeopleMatched int         `json:"totalPeopleMatched"`
	MatchedRooms       []RoomGroup `json:"matchedRooms"`
}
