package controllers

import (
	"context"

	"github.com/adhika-w/trafficx/pkg/catalog"
	"github.com/adhika-w/trafficx/pkg/detection"
	"github.com/adhika-w/trafficx/pkg/routing"
	"github.com/adhika-w/trafficx/pkg/signalplan"
)

type SimulationService interface {
	Simulate(archetypeCode int, vehiclesPerRoad map[string][]signalplan.VehicleCount,
		emergencyRoads []string) (*signalplan.PhasePlan, error)
	IntersectionTypes() []catalog.Archetype
	VehicleTypes() []catalog.VehicleType
}

type RoutingService interface {
	Route(edges []routing.Edge, start, destination string, useTraffic bool) ([]string, int, bool)
}

type DetectionService interface {
	Detect(ctx context.Context, image []byte) ([]detection.Detection,
		detection.SignalDecision, detection.Stats, error)
}
