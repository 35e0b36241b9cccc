package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMaharashtraSurvey(t *testing.T) {
	// 45cm rows, 10cm plants, 1 acre: 0.045 m2 per plant, ~22.22 plants/m2
	out, err := Calculate(Survey{
		RowSpacing:   45,
		PlantSpacing: 10,
		Unit:         "cm",
		AreaAcres:    1,
		State:        "Maharashtra",
	})
	require.NoError(t, err)

	assert.Equal(t, 89930, out.CalculatedCapacity)
	assert.Equal(t, 14000, out.TargetPlants)
	assert.Equal(t, 15556, out.RequiredSeeds) // 14000 / 0.90
	assert.Equal(t, 2, out.RequiredPackets)   // floor(15555.5 / 7500)
	assert.Nil(t, out.GapPackets)
}

func TestCalculateGujaratTarget(t *testing.T) {
	out, err := Calculate(Survey{RowSpacing: 0.9, PlantSpacing: 0.3, Unit: "m", AreaAcres: 2, State: "Gujarat"})
	require.NoError(t, err)
	assert.Equal(t, 14800, out.TargetPlants)
	assert.Equal(t, 16444, out.RequiredSeeds)
	assert.Equal(t, 2, out.RequiredPackets)
}

func TestCalculateMeterUnitMatchesCM(t *testing.T) {
	cm, err := Calculate(Survey{RowSpacing: 45, PlantSpacing: 10, Unit: "cm", AreaAcres: 1, State: "Maharashtra"})
	require.NoError(t, err)
	m, err := Calculate(Survey{RowSpacing: 0.45, PlantSpacing: 0.10, Unit: "m", AreaAcres: 1, State: "Maharashtra"})
	require.NoError(t, err)
	assert.Equal(t, cm, m)
}

func TestCalculateMortalityGap(t *testing.T) {
	mort := 10.0
	out, err := Calculate(Survey{
		RowSpacing:   45,
		PlantSpacing: 10,
		Unit:         "cm",
		AreaAcres:    1,
		State:        "Maharashtra",
		MortalityPct: &mort,
	})
	require.NoError(t, err)
	require.NotNil(t, out.GapPlants)
	require.NotNil(t, out.GapSeeds)
	require.NotNil(t, out.GapPackets)

	// effective rate 0.90 * 0.90 = 0.81; gap = capacity * 0.19
	assert.Equal(t, 17087, *out.GapPlants)
	assert.Equal(t, 21095, *out.GapSeeds)
	assert.Equal(t, 2, *out.GapPackets)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   Survey
		want error
	}{
		{"zero row spacing", Survey{RowSpacing: 0, PlantSpacing: 10, Unit: "cm", AreaAcres: 1, State: "Maharashtra"}, ErrInvalidSpacing},
		{"negative plant spacing", Survey{RowSpacing: 45, PlantSpacing: -1, Unit: "cm", AreaAcres: 1, State: "Maharashtra"}, ErrInvalidSpacing},
		{"zero area", Survey{RowSpacing: 45, PlantSpacing: 10, Unit: "cm", AreaAcres: 0, State: "Maharashtra"}, ErrInvalidSpacing},
		{"unknown state", Survey{RowSpacing: 45, PlantSpacing: 10, Unit: "cm", AreaAcres: 1, State: "Punjab"}, ErrUnknownState},
		{"bad unit", Survey{RowSpacing: 45, PlantSpacing: 10, Unit: "ft", AreaAcres: 1, State: "Maharashtra"}, ErrInvalidUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCalculateRejectsFullMortality(t *testing.T) {
	mort := 100.0
	_, err := Calculate(Survey{RowSpacing: 45, PlantSpacing: 10, Unit: "cm", AreaAcres: 1, State: "Maharashtra", MortalityPct: &mort})
	assert.Error(t, err)
}
