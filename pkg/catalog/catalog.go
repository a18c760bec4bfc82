// Package catalog holds the static intersection and vehicle-type tables.
// The tables are initialized once at load time and never written afterwards,
// so they are safe to read from any goroutine without locking.
package catalog

// VehicleType describes one entry of the vehicle catalog. Priority is the
// emergency tier: 0 = non-emergency, 3 = fire engine, 5 = ambulance.
type VehicleType struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Priority  int    `json:"priority"`
	Color     string `json:"color"`
	Emergency bool   `json:"emergency"`
}

// Archetype describes one of the five fixed intersection topologies.
type Archetype struct {
	Code        int    `json:"type"`
	Name        string `json:"name"`
	Roads       int    `json:"roads"`
	Description string `json:"description"`
}

const (
	VehicleAmbulance  = "Ambulance"
	VehicleFireEngine = "Fire Engine"
)

const (
	PriorityNone       = 0
	PriorityFireEngine = 3
	PriorityAmbulance  = 5
)

var vehicleTypes = []VehicleType{
	{ID: VehicleAmbulance, Label: "Ambulance", Priority: PriorityAmbulance, Color: "#ef4444", Emergency: true},
	{ID: VehicleFireEngine, Label: "Fire Engine", Priority: PriorityFireEngine, Color: "#dc2626", Emergency: true},
	{ID: "car", Label: "Car", Priority: PriorityNone, Color: "#4a8af4", Emergency: false},
	{ID: "bus", Label: "Bus", Priority: PriorityNone, Color: "#e8a838", Emergency: false},
	{ID: "police vehicle", Label: "Police Vehicle", Priority: PriorityNone, Color: "#2563eb", Emergency: false},
	{ID: "auto-rikshaw", Label: "Auto Rickshaw", Priority: PriorityNone, Color: "#a855f7", Emergency: false},
	{ID: "TwoWheelers", Label: "Two-Wheeler", Priority: PriorityNone, Color: "#10b981", Emergency: false},
}

var archetypes = []Archetype{
	{Code: 1, Name: "1-Way Signal", Roads: 1, Description: "Single road with one signal controlling flow"},
	{Code: 2, Name: "2-Way Signal", Roads: 2, Description: "Two opposing roads with alternating signals"},
	{Code: 3, Name: "3-Way Signal", Roads: 3, Description: "T-intersection with three-phase signal cycle"},
	{Code: 4, Name: "4-Way Signal", Roads: 4, Description: "Standard crossroad with four-phase signal cycle"},
	{Code: 5, Name: "5-Way Roundabout", Roads: 5, Description: "Roundabout with five entry points and yield signals"},
}

// canonical geographic ordering of road labels, truncated per archetype.
var roadLabels = []string{"North", "South", "East", "West", "Southwest"}

// emergencyPriority maps emergency vehicle type ids to their tier.
var emergencyPriority = map[string]int{
	VehicleAmbulance:  PriorityAmbulance,
	VehicleFireEngine: PriorityFireEngine,
}

// VehicleTypes returns the vehicle catalog in its stable catalog order.
func VehicleTypes() []VehicleType {
	out := make([]VehicleType, len(vehicleTypes))
	copy(out, vehicleTypes)
	return out
}

// Archetypes returns the intersection catalog ordered by code.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// ArchetypeByCode looks up an archetype by its 1-5 code.
func ArchetypeByCode(code int) (Archetype, bool) {
	for _, a := range archetypes {
		if a.Code == code {
			return a, true
		}
	}
	return Archetype{}, false
}

// RoadLabels returns the canonical road labels for an intersection with
/// count roads: North, South, East, West, Southwest truncated to count.
func RoadLabels(count int) []string {
	if count > len(roadLabels) {
		count = len(roadLabels)
	}
	if count < 0 {
		count = 0
	}
	out := make([]string, count)
	copy(out, roadLabels[:count])
	return out
}

// EmergencyPriority returns the emergency tier of a vehicle type id, or 0
// if the type is not an emergency type.
func EmergencyPriority(vehicleTypeID string) int {
	return emergencyPriority[vehicleTypeID]
}
