// Package detection defines the detection-provider boundary and the
// confidence-threshold rule that maps detections to a GREEN/RED decision.
// The ML model itself lives behind the Provider interface; this package
// only consumes its output.
package detection

import (
	"context"
	"sort"
	"strings"

	"github.com/adhika-w/trafficx/pkg/catalog"
)

// Detection is one labelled observation reported by a provider for a
// single frame or image.
type Detection struct {
	ClassID    int        `json:"class_id"`
	ClassName  string     `json:"class_name"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"`
	Emergency  bool       `json:"is_emergency"`
}

// SignalDecision is the GREEN/RED verdict for one detection list.
type SignalDecision struct {
	Signal            string   `json:"signal"`
	Reason            string   `json:"reason"`
	EmergencyVehicles []string `json:"emergency_vehicles"`
	Override          bool     `json:"override"`
}

// Stats summarizes one detection pass.
type Stats struct {
	TotalVehicles int            `json:"total_vehicles"`
	ClassCounts   map[string]int `json:"class_counts"`
	InferenceMs   float64        `json:"inference_ms"`
}

// Provider supplies detections for a frame. Implementations must be safe
// for concurrent use.
type Provider interface {
	Detect(ctx context.Context, image []byte) ([]Detection, error)
}

// DefaultConfidenceThreshold is the minimum confidence for an emergency
// detection to force a green override.
const DefaultConfidenceThreshold = 0.30

const (
	SignalGreen = "GREEN"
	SignalRed   = "RED"
)

// Decider applies the priority-override rule to a detection list.
type Decider struct {
	threshold float64
}

func NewDecider(threshold float64) *Decider {
	return &Decider{threshold: threshold}
}

// DetermineSignal returns GREEN with override when any detection carries an
// emergency-tagged class at or above the confidence threshold, RED
// otherwise. The distinct emergency names are reported sorted so the
// decision is byte-for-byte reproducible for identical inputs.
func (d *Decider) DetermineSignal(dets []Detection) SignalDecision {
	seen := make(map[string]bool)
	for _, det := range dets {
		if det.Confidence < d.threshold {
			continue
		}
		if det.Emergency || catalog.EmergencyPriority(det.ClassName) > 0 {
			seen[det.ClassName] = true
		}
	}

	if len(seen) == 0 {
		return SignalDecision{
			Signal:            SignalRed,
			Reason:            "No emergency vehicle detected",
			EmergencyVehicles: []string{},
			Override:          false,
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return SignalDecision{
		Signal:            SignalGreen,
		Reason:            "Emergency vehicle detected: " + strings.Join(names, ", "),
		EmergencyVehicles: names,
		Override:          true,
	}
}

// Summarize aggregates per-class counts for a detection list.
func Summarize(dets []Detection, inferenceMs float64) Stats {
	counts := make(map[string]int)
	for _, det := range dets {
		counts[det.ClassName]++
	}
	return Stats{
		TotalVehicles: len(dets),
		ClassCounts:   counts,
		InferenceMs:   inferenceMs,
	}
}
