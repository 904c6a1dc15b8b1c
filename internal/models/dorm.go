package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Gender identifies the gender a dorm room is assigned to.
type Gender string

const (
	GenderMale   Gender = "Erkek"
	GenderFemale Gender = "Kız"
)

// GenderValues enumerates every gender in presentation order.
func GenderValues() []Gender {
	return []Gender{GenderFemale, GenderMale}
}

// Valid reports whether the value belongs to the closed gender set.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Campus identifies one of the university campuses.
type Campus string

const (
	CampusMain Campus = "Ana Kampüs"
	CampusWest Campus = "Batı Kampüsü"
)

// CampusValues enumerates every campus in presentation order.
func CampusValues() []Campus {
	return []Campus{CampusMain, CampusWest}
}

// Valid reports whether the value belongs to the closed campus set.
func (c Campus) Valid() bool {
	return c == CampusMain || c == CampusWest
}

// Capacity is the occupant count of a room.
type Capacity string

const (
	CapacityOne   Capacity = "1 Kişilik"
	CapacityTwo   Capacity = "2 Kişilik"
	CapacityThree Capacity = "3 Kişilik"
	CapacityFour  Capacity = "4 Kişilik"
	CapacityFive  Capacity = "5 Kişilik"
)

// CapacityValues enumerates every capacity in ascending order.
func CapacityValues() []Capacity {
	return []Capacity{CapacityOne, CapacityTwo, CapacityThree, CapacityFour, CapacityFive}
}

// Valid reports whether the value belongs to the closed capacity set.
func (c Capacity) Valid() bool {
	switch c {
	case CapacityOne, CapacityTwo, CapacityThree, CapacityFour, CapacityFive:
		return true
	}
	return false
}

const (
	wildcardAny          = "any"
	capacityModeMultiple = "multiple"
)

// SpecificDormInfo describes a concrete room a person currently occupies.
// All fields are fully determined; this is a real room, not a preference.
type SpecificDormInfo struct {
	Gender   Gender   `db:"gender" json:"gender"`
	Campus   Campus   `db:"campus" json:"campus"`
	Capacity Capacity `db:"capacity" json:"capacity"`
	BunkBed  bool     `db:"bunk_bed" json:"bunkBed"`
}

// Lift converts a concrete room into equivalent desired criteria with no
// wildcards. The reverse conversion does not exist.
func (s SpecificDormInfo) Lift() DesiredDormInfo {
	return DesiredDormInfo{
		Gender:   Exactly(s.Gender),
		Campus:   Exactly(s.Campus),
		Capacity: Exactly(s.Capacity),
		BunkBed:  Exactly(s.BunkBed),
	}
}

// DesiredDormInfo captures acceptance criteria for a room someone wants.
// Every attribute is a Constraint; the zero value accepts anything, so
// records stored before an attribute existed keep matching. Building and
// RoomNumber are only consulted by the exact-swap report.
type DesiredDormInfo struct {
	Gender     Constraint[Gender]
	Campus     Constraint[Campus]
	Capacity   Constraint[Capacity]
	BunkBed    Constraint[bool]
	Building   string
	RoomNumber string
}

// desiredDormWire is the stored/transported shape: sentinel string "any"
// for wildcards, "multiple" plus the preferredCapacities allow-list for
// the capacity set mode, and absent fields meaning "any".
type desiredDormWire struct {
	Gender              string          `json:"gender,omitempty"`
	Campus              string          `json:"campus,omitempty"`
	Capacity            string          `json:"capacity,omitempty"`
	BunkBed             json.RawMessage `json:"bunkBed,omitempty"`
	PreferredCapacities []Capacity      `json:"preferredCapacities,omitempty"`
	Building            string          `json:"building,omitempty"`
	RoomNumber          string          `json:"roomNumber,omitempty"`
}

// MarshalJSON renders the wire shape shared with the stored documents.
func (d DesiredDormInfo) MarshalJSON() ([]byte, error) {
	wire := desiredDormWire{
		Gender:     wildcardAny,
		Campus:     wildcardAny,
		Capacity:   wildcardAny,
		BunkBed:    json.RawMessage(`"any"`),
		Building:   d.Building,
		RoomNumber: d.RoomNumber,
	}
	if d.Gender.Mode == ConstraintExactly {
		wire.Gender = string(d.Gender.Value)
	}
	if d.Campus.Mode == ConstraintExactly {
		wire.Campus = string(d.Campus.Value)
	}
	switch d.Capacity.Mode {
	case ConstraintExactly:
		wire.Capacity = string(d.Capacity.Value)
	case ConstraintOneOf:
		wire.Capacity = capacityModeMultiple
		wire.PreferredCapacities = d.Capacity.Set
	}
	if d.BunkBed.Mode == ConstraintExactly {
		raw, err := json.Marshal(d.BunkBed.Value)
		if err != nil {
			return nil, err
		}
		wire.BunkBed = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON accepts the wire shape, treating absent or "any" fields as
// unconstrained. The bunk-bed attribute tolerates both a JSON boolean and
// the legacy "true"/"false" strings older clients sent.
func (d *DesiredDormInfo) UnmarshalJSON(data []byte) error {
	var wire desiredDormWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode desired dorm: %w", err)
	}
	*d = DesiredDormInfo{
		Gender:     parseExact[Gender](wire.Gender),
		Campus:     parseExact[Campus](wire.Campus),
		Building:   wire.Building,
		RoomNumber: wire.RoomNumber,
	}
	switch wire.Capacity {
	case "", wildcardAny:
		d.Capacity = Any[Capacity]()
	case capacityModeMultiple:
		d.Capacity = OneOf(wire.PreferredCapacities...)
	default:
		d.Capacity = Exactly(Capacity(wire.Capacity))
	}
	bunk, err := parseBunkBed(wire.BunkBed)
	if err != nil {
		return err
	}
	d.BunkBed = bunk
	return nil
}

func parseExact[T ~string](raw string) Constraint[T] {
	if raw == "" || raw == wildcardAny {
		return Any[T]()
	}
	return Exactly(T(raw))
}

func parseBunkBed(raw json.RawMessage) (Constraint[bool], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Any[bool](), nil
	}
	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		return Exactly(b), nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return Constraint[bool]{}, fmt.Errorf("decode bunkBed criterion: %w", err)
	}
	switch s {
	case "", wildcardAny:
		return Any[bool](), nil
	case "true":
		return Exactly(true), nil
	case "false":
		return Exactly(false), nil
	default:
		return Constraint[bool]{}, fmt.Errorf("decode bunkBed criterion: unknown value %q", s)
	}
}

// RoomDetails carries the optional physical identification of a room.
type RoomDetails struct {
	RoomNumber  string `json:"roomNumber"`
	Building    string `json:"building"`
	HasBathroom bool   `json:"hasBathroom"`
}
