// Package population implements the plant population and seed requirement
// tool used by cotton field surveys. Pure arithmetic, no persistence.
package population

import (
	"errors"
	"math"
)

const (
	acreToM2       = 4046.86
	Confidence     = 0.90 // assumed germination/establishment rate
	SeedsPerPacket = 7500 // seeds per 450g packet
)

// Target plant population per acre, by state agronomy guideline.
var plantsPerAcre = map[string]float64{
	"Maharashtra": 14000,
	"Gujarat":     7400,
}

var (
	ErrInvalidSpacing = errors.New("spacing and area must be positive")
	ErrUnknownState   = errors.New("unknown state")
	ErrInvalidUnit    = errors.New("spacing unit must be cm or m")
)

// Survey is one farmer survey entry.
type Survey struct {
	RowSpacing   float64  `json:"row_spacing"`
	PlantSpacing float64  `json:"plant_spacing"`
	Unit         string   `json:"unit"` // cm|m
	AreaAcres    float64  `json:"area_acres"`
	State        string   `json:"state"`
	MortalityPct *float64 `json:"mortality_pct,omitempty"`
}

// SeedReport carries the rounded display values. Packet counts are rounded
// down to whole packets; seed and plant counts to the nearest unit.
type SeedReport struct {
	CalculatedCapacity int `json:"calculated_capacity"`
	TargetPlants       int `json:"target_plants"`
	RequiredSeeds      int `json:"required_seeds"`
	RequiredPackets    int `json:"required_packets"`

	GapPlants  *int `json:"gap_plants,omitempty"`
	GapSeeds   *int `json:"gap_seeds,omitempty"`
	GapPackets *int `json:"gap_packets,omitempty"`
}

// Calculate converts a survey into seed-packet and gap-filling requirements.
// The target population comes from the per-acre state guideline, and the
// required seeds from dividing it by the establishment confidence; packets
// round down to whole packets.
func Calculate(s Survey) (*SeedReport, error) {
	if s.RowSpacing <= 0 || s.PlantSpacing <= 0 || s.AreaAcres <= 0 {
		return nil, ErrInvalidSpacing
	}
	perAcre, ok := plantsPerAcre[s.State]
	if !ok {
		return nil, ErrUnknownState
	}

	row, plant := s.RowSpacing, s.PlantSpacing
	switch s.Unit {
	case "cm":
		row /= 100
		plant /= 100
	case "m":
	default:
		return nil, ErrInvalidUnit
	}

	plantAreaM2 := row * plant
	plantsPerM2 := 1 / plantAreaM2
	fieldAreaM2 := s.AreaAcres * acreToM2
	capacity := plantsPerM2 * fieldAreaM2

	targetPlants := perAcre * s.AreaAcres
	requiredSeeds := targetPlants / Confidence
	requiredPackets := math.Floor(requiredSeeds / SeedsPerPacket)

	out := &SeedReport{
		CalculatedCapacity: int(math.Round(capacity)),
		TargetPlants:       int(math.Round(targetPlants)),
		RequiredSeeds:      int(math.Round(requiredSeeds)),
		RequiredPackets:    int(requiredPackets),
	}

	if s.MortalityPct != nil {
		m := *s.MortalityPct
		if m < 0 || m >= 100 {
			return nil, ErrInvalidSpacing
		}
		effective := Confidence * (1 - m/100)
		expected := capacity * effective
		gap := capacity - expected
		gapSeeds := gap / effective
		gapPackets := int(math.Floor(gapSeeds / SeedsPerPacket))

		gp := int(math.Round(gap))
		gs := int(math.Round(gapSeeds))
		out.GapPlants = &gp
		out.GapSeeds = &gs
		out.GapPackets = &gapPackets
	}

	return out, nil
}
