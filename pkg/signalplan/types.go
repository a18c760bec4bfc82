// Package signalplan computes priority-tiered signal phase plans for
// multi-way intersections. Emergency roads are derived from the actual
// vehicle composition on each road, never from caller hints.
package signalplan

// SignalState is the lamp state a road shows during one phase.
type SignalState string

const (
	SignalGreen  SignalState = "GREEN"
	SignalYellow SignalState = "YELLOW"
	SignalRed    SignalState = "RED"
)

// YieldAllRoad is the synthetic active road of the terminal roundabout phase.
const YieldAllRoad = "Yield-All"

// VehicleCount is one (vehicle type, count) pair of a road's composition.
type VehicleCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RoadEmergencyInfo is the classifier verdict for a single road. It is
// recomputed on every scheduling call and never persisted.
type RoadEmergencyInfo struct {
	IsEmergency   bool
	Priority      int
	EmergencyType string
	GreenDuration int
}

// Phase is one scheduled interval: exactly one road is GREEN and every
// other road RED, except the Yield-All phase which sets all roads YELLOW.
type Phase struct {
	PhaseNumber         int                    `json:"phase_number"`
	ActiveRoad          string                 `json:"active_road"`
	GreenDuration       int                    `json:"green_duration"`
	YellowDuration      int                    `json:"yellow_duration"`
	IsEmergencyPriority bool                   `json:"is_emergency_priority"`
	EmergencyType       string                 `json:"emergency_type,omitempty"`
	VehicleCount        int                    `json:"vehicle_count"`
	Signals             map[string]SignalState `json:"signals"`
}

// PhasePlan is the ordered phase sequence for one intersection cycle.
type PhasePlan struct {
	ArchetypeCode   int      `json:"intersection_type"`
	ArchetypeName   string   `json:"intersection_name"`
	Description     string   `json:"description"`
	Roads           []string `json:"roads"`
	TotalCycleTime  int      `json:"total_cycle_time"`
	Phases          []Phase  `json:"phases"`
	EmergencyActive bool     `json:"emergency_active"`
	EmergencyRoads  []string `json:"emergency_roads"`
}
