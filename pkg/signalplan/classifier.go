package signalplan

import (
	"github.com/adhika-w/trafficx/pkg/catalog"
)

// classifyRoad inspects the actual vehicles on a road and decides its
// emergency status. Only pairs with count > 0 and an emergency-tiered type
// participate; the highest tier present wins. Tiers are distinct per type,
// so no tie is possible. Pure function of the composition.
func (s *Scheduler) classifyRoad(vehicles []VehicleCount) RoadEmergencyInfo {
	bestPriority := 0
	bestType := ""

	for _, v := range vehicles {
		if v.Count <= 0 {
			continue
		}
		if p := catalog.EmergencyPriority(v.Type); p > bestPriority {
			bestPriority = p
			bestType = v.Type
		}
	}

	switch bestType {
	case catalog.VehicleAmbulance:
		return RoadEmergencyInfo{
			IsEmergency:   true,
			Priority:      bestPriority,
			EmergencyType: catalog.VehicleAmbulance,
			GreenDuration: s.policy.AmbulanceGreen,
		}
	case catalog.VehicleFireEngine:
		return RoadEmergencyInfo{
			IsEmergency:   true,
			Priority:      bestPriority,
			EmergencyType: catalog.VehicleFireEngine,
			GreenDuration: s.policy.FireEngineGreen,
		}
	default:
		return RoadEmergencyInfo{
			IsEmergency:   false,
			Priority:      0,
			GreenDuration: s.policy.DefaultGreen,
		}
	}
}

// totalVehicles sums every count of a road's composition. Negative counts
// are malformed input and contribute zero.
func totalVehicles(vehicles []VehicleCount) int {
	total := 0
	for _, v := range vehicles {
		if v.Count > 0 {
			total += v.Count
		}
	}
	return total
}
