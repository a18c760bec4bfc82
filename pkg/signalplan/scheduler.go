package signalplan

import (
	"errors"
	"sort"

	"github.com/adhika-w/trafficx/pkg/catalog"
	"github.com/adhika-w/trafficx/pkg/util"
)

var ErrUnknownArchetype = errors.New("unknown intersection type")

// Scheduler produces ordered phase plans for an intersection. It holds only
// the duration policy and is safe for concurrent use.
type Scheduler struct {
	policy Policy
}

func NewScheduler(policy Policy) *Scheduler {
	return &Scheduler{policy: policy}
}

// GeneratePhases builds the phase plan for the given archetype code and
// per-road vehicle composition.
//
// Emergency priority is derived from the actual composition, never from the
// advisory emergencyRoads hint, which is accepted only for forward
// compatibility. Roads are served highest emergency tier first, then by
// descending vehicle count; roads tying on both keys keep their canonical
// North/South/East/West/Southwest order.
func (s *Scheduler) GeneratePhases(archetypeCode int, vehiclesPerRoad map[string][]VehicleCount,
	emergencyRoads []string) (*PhasePlan, error) {
	_ = emergencyRoads // advisory only, see doc comment

	arch, ok := catalog.ArchetypeByCode(archetypeCode)
	if !ok {
		return nil, util.WrapErrorf(ErrUnknownArchetype, util.ErrBadParamInput,
			"invalid intersection type: %d", archetypeCode)
	}

	roads := catalog.RoadLabels(arch.Roads)

	roadInfo := make(map[string]RoadEmergencyInfo, len(roads))
	actualEmergencyRoads := make([]string, 0, len(roads))
	for _, road := range roads {
		info := s.classifyRoad(vehiclesPerRoad[road])
		roadInfo[road] = info
		if info.IsEmergency {
			actualEmergencyRoads = append(actualEmergencyRoads, road)
		}
	}

	totals := make(map[string]int, len(roads))
	for _, road := range roads {
		totals[road] = totalVehicles(vehiclesPerRoad[road])
	}

	// SliceStable keeps the canonical order for roads tying on both keys;
	// that stability is part of the contract, not an accident.
	sortedRoads := make([]string, len(roads))
	copy(sortedRoads, roads)
	sort.SliceStable(sortedRoads, func(i, j int) bool {
		ri, rj := roadInfo[sortedRoads[i]], roadInfo[sortedRoads[j]]
		if ri.Priority != rj.Priority {
			return ri.Priority > rj.Priority
		}
		return totals[sortedRoads[i]] > totals[sortedRoads[j]]
	})

	phases := make([]Phase, 0, len(roads)+1)
	totalCycleTime := 0

	for i, road := range sortedRoads {
		info := roadInfo[road]

		green := info.GreenDuration
		if !info.IsEmergency {
			switch {
			case totals[road] > s.policy.HighDensityThreshold:
				green = s.policy.HighDensityGreen
			case totals[road] > s.policy.MediumDensityThreshold:
				green = s.policy.MediumDensityGreen
			default:
				green = s.policy.DefaultGreen
			}
		}

		signals := make(map[string]SignalState, len(roads))
		for _, r := range roads {
			if r == road {
				signals[r] = SignalGreen
			} else {
				signals[r] = SignalRed
			}
		}

		phases = append(phases, Phase{
			PhaseNumber:         i + 1,
			ActiveRoad:          road,
			GreenDuration:       green,
			YellowDuration:      s.policy.DefaultYellow,
			IsEmergencyPriority: info.IsEmergency,
			EmergencyType:       info.EmergencyType,
			VehicleCount:        totals[road],
			Signals:             signals,
		})
		totalCycleTime += green + s.policy.DefaultYellow
	}

	// the 5-way roundabout ends with a synthetic all-yellow yield phase
	if arch.Code == 5 {
		signals := make(map[string]SignalState, len(roads))
		for _, r := range roads {
			signals[r] = SignalYellow
		}
		phases = append(phases, Phase{
			PhaseNumber:    len(phases) + 1,
			ActiveRoad:     YieldAllRoad,
			GreenDuration:  s.policy.YieldAllGreen,
			YellowDuration: s.policy.YieldAllClearance,
			Signals:        signals,
		})
		totalCycleTime += s.policy.YieldAllGreen + s.policy.YieldAllClearance
	}

	return &PhasePlan{
		ArchetypeCode:   arch.Code,
		ArchetypeName:   arch.Name,
		Description:     arch.Description,
		Roads:           roads,
		TotalCycleTime:  totalCycleTime,
		Phases:          phases,
		EmergencyActive: len(actualEmergencyRoads) > 0,
		EmergencyRoads:  actualEmergencyRoads,
	}, nil
}
