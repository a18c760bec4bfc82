package signalplan

import (
	"errors"
	"testing"

	"github.com/adhika-w/trafficx/pkg/catalog"
	"github.com/adhika-w/trafficx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(DefaultPolicy())
}

func TestGeneratePhasesPhaseCount(t *testing.T) {
	testCases := []struct {
		name       string
		archetype  int
		wantPhases int
	}{
		{name: "1-way", archetype: 1, wantPhases: 1},
		{name: "2-way", archetype: 2, wantPhases: 2},
		{name: "3-way", archetype: 3, wantPhases: 3},
		{name: "4-way", archetype: 4, wantPhases: 4},
		{name: "5-way roundabout has extra yield-all phase", archetype: 5, wantPhases: 6},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newTestScheduler().GeneratePhases(tt.archetype,
				map[string][]VehicleCount{}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhases, len(plan.Phases))
		})
	}
}

func TestGeneratePhasesUnknownArchetype(t *testing.T) {
	for _, code := range []int{0, -1, 6, 7, 100} {
		plan, err := newTestScheduler().GeneratePhases(code, map[string][]VehicleCount{}, nil)
		require.Error(t, err)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrUnknownArchetype)

		var wrapped *util.Error
		require.True(t, errors.As(err, &wrapped))
		assert.Equal(t, util.ErrBadParamInput, wrapped.Code())
	}
}

func TestGeneratePhasesTotalCycleTime(t *testing.T) {
	plan, err := newTestScheduler().GeneratePhases(5, map[string][]VehicleCount{
		"North": {{Type: "car", Count: 25}},
		"South": {{Type: catalog.VehicleAmbulance, Count: 1}},
		"East":  {{Type: "bus", Count: 12}},
	}, nil)
	require.NoError(t, err)

	sum := 0
	for _, p := range plan.Phases {
		sum += p.GreenDuration + p.YellowDuration
	}
	assert.Equal(t, sum, plan.TotalCycleTime)

	// terminal yield-all phase contributes its fixed 13 seconds
	last := plan.Phases[len(plan.Phases)-1]
	assert.Equal(t, YieldAllRoad, last.ActiveRoad)
	assert.Equal(t, 13, last.GreenDuration+last.YellowDuration)
}

func TestGeneratePhasesSignalStates(t *testing.T) {
	plan, err := newTestScheduler().GeneratePhases(5, map[string][]VehicleCount{
		"North": {{Type: "car", Count: 3}},
	}, nil)
	require.NoError(t, err)

	for _, phase := range plan.Phases {
		if phase.ActiveRoad == YieldAllRoad {
			for _, road := range plan.Roads {
				assert.Equal(t, SignalYellow, phase.Signals[road])
			}
			assert.False(t, phase.IsEmergencyPriority)
			continue
		}

		greens := 0
		for _, road := range plan.Roads {
			switch phase.Signals[road] {
			case SignalGreen:
				greens++
				assert.Equal(t, phase.ActiveRoad, road)
			case SignalRed:
			default:
				t.Fatalf("unexpected signal state %q in ordinary phase", phase.Signals[road])
			}
		}
		assert.Equal(t, 1, greens, "exactly one road green per ordinary phase")
	}
}

func TestGeneratePhasesAmbulancePriority(t *testing.T) {
	plan, err := newTestScheduler().GeneratePhases(4, map[string][]VehicleCount{
		"North": {{Type: catalog.VehicleAmbulance, Count: 1}},
		"South": {{Type: "car", Count: 8}},
		"East":  {{Type: "bus", Count: 4}},
		"West":  {{Type: "car", Count: 2}},
	}, nil)
	require.NoError(t, err)

	require.Len(t, plan.Phases, 4)
	first := plan.Phases[0]
	assert.Equal(t, "North", first.ActiveRoad)
	assert.Equal(t, 60, first.GreenDuration)
	assert.True(t, first.IsEmergencyPriority)
	assert.Equal(t, catalog.VehicleAmbulance, first.EmergencyType)

	assert.True(t, plan.EmergencyActive)
	assert.Equal(t, []string{"North"}, plan.EmergencyRoads)
}

func TestGeneratePhasesFireEngineBelowAmbulance(t *testing.T) {
	plan, err := newTestScheduler().GeneratePhases(3, map[string][]VehicleCount{
		"North": {{Type: catalog.VehicleFireEngine, Count: 1}},
		"South": {{Type: catalog.VehicleAmbulance, Count: 1}},
		"East":  {{Type: "car", Count: 30}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "South", plan.Phases[0].ActiveRoad)
	assert.Equal(t, 60, plan.Phases[0].GreenDuration)
	assert.Equal(t, "North", plan.Phases[1].ActiveRoad)
	assert.Equal(t, 45, plan.Phases[1].GreenDuration)
	assert.Equal(t, "East", plan.Phases[2].ActiveRoad)
	assert.Equal(t, []string{"North", "South"}, plan.EmergencyRoads)
}

func TestGeneratePhasesDensityTiers(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		wantGreen int
	}{
		{name: "low density", count: 5, wantGreen: 30},
		{name: "boundary ten stays low", count: 10, wantGreen: 30},
		{name: "medium density", count: 11, wantGreen: 35},
		{name: "boundary twenty stays medium", count: 20, wantGreen: 35},
		{name: "high density", count: 21, wantGreen: 45},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newTestScheduler().GeneratePhases(1, map[string][]VehicleCount{
				"North": {{Type: "car", Count: tt.count}},
			}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGreen, plan.Phases[0].GreenDuration)
			assert.Equal(t, 5, plan.Phases[0].YellowDuration)
		})
	}
}

func TestGeneratePhasesStableCanonicalOrder(t *testing.T) {
	// identical priority and identical counts on every road: the canonical
	// North/South/East/West order must survive the sort
	plan, err := newTestScheduler().GeneratePhases(4, map[string][]VehicleCount{
		"North": {{Type: "car", Count: 5}},
		"South": {{Type: "car", Count: 5}},
		"East":  {{Type: "car", Count: 5}},
		"West":  {{Type: "car", Count: 5}},
	}, nil)
	require.NoError(t, err)

	got := make([]string, 0, len(plan.Phases))
	for _, p := range plan.Phases {
		got = append(got, p.ActiveRoad)
	}
	assert.Equal(t, []string{"North", "South", "East", "West"}, got)
}

func TestGeneratePhasesOrdersByCountWithinTier(t *testing.T) {
	plan, err := newTestScheduler().GeneratePhases(4, map[string][]VehicleCount{
		"North": {{Type: "car", Count: 2}},
		"South": {{Type: "car", Count: 9}},
		"East":  {{Type: "car", Count: 4}},
		"West":  {{Type: "car", Count: 9}},
	}, nil)
	require.NoError(t, err)

	got := make([]string, 0, len(plan.Phases))
	for _, p := range plan.Phases {
		got = append(got, p.ActiveRoad)
	}
	// South and West tie on count, canonical order breaks the tie
	assert.Equal(t, []string{"South", "West", "East", "North"}, got)
}

func TestGeneratePhasesAdvisoryHintIgnored(t *testing.T) {
	// the hint names North but North carries no emergency vehicle; priority
	// must come from composition alone
	plan, err := newTestScheduler().GeneratePhases(2, map[string][]VehicleCount{
		"North": {{Type: "car", Count: 1}},
		"South": {{Type: "car", Count: 15}},
	}, []string{"North"})
	require.NoError(t, err)

	assert.False(t, plan.EmergencyActive)
	assert.Empty(t, plan.EmergencyRoads)
	assert.Equal(t, "South", plan.Phases[0].ActiveRoad)
}

func TestGeneratePhasesMalformedCounts(t *testing.T) {
	// zero-count ambulance must not trigger priority; negative counts are
	// treated as zero
	plan, err := newTestScheduler().GeneratePhases(2, map[string][]VehicleCount{
		"North": {{Type: catalog.VehicleAmbulance, Count: 0}, {Type: "car", Count: -7}},
		"South": {{Type: "car", Count: 3}},
	}, nil)
	require.NoError(t, err)

	assert.False(t, plan.EmergencyActive)
	assert.Equal(t, "South", plan.Phases[0].ActiveRoad)
	assert.Equal(t, 0, plan.Phases[1].VehicleCount)
}

func TestClassifyRoadPicksHighestTier(t *testing.T) {
	s := newTestScheduler()

	info := s.classifyRoad([]VehicleCount{
		{Type: catalog.VehicleFireEngine, Count: 2},
		{Type: catalog.VehicleAmbulance, Count: 1},
		{Type: "car", Count: 10},
	})
	assert.True(t, info.IsEmergency)
	assert.Equal(t, catalog.PriorityAmbulance, info.Priority)
	assert.Equal(t, catalog.VehicleAmbulance, info.EmergencyType)
	assert.Equal(t, 60, info.GreenDuration)

	info = s.classifyRoad([]VehicleCount{{Type: catalog.VehicleFireEngine, Count: 1}})
	assert.Equal(t, catalog.PriorityFireEngine, info.Priority)
	assert.Equal(t, 45, info.GreenDuration)

	info = s.classifyRoad([]VehicleCount{{Type: "car", Count: 3}})
	assert.False(t, info.IsEmergency)
	assert.Equal(t, 0, info.Priority)
	assert.Empty(t, info.EmergencyType)
}
