package usecases

import (
	"github.com/adhika-w/trafficx/pkg/catalog"
	"github.com/adhika-w/trafficx/pkg/signalplan"
	"go.uber.org/zap"
)

// SimulationService wraps the phase scheduler and the static catalogs for
// the transport layer.
type SimulationService struct {
	log       *zap.Logger
	scheduler *signalplan.Scheduler
}

func NewSimulationService(log *zap.Logger, scheduler *signalplan.Scheduler) *SimulationService {
	return &SimulationService{
		log:       log,
		scheduler: scheduler,
	}
}

func (ss *SimulationService) Simulate(archetypeCode int, vehiclesPerRoad map[string][]signalplan.VehicleCount,
	emergencyRoads []string) (*signalplan.PhasePlan, error) {
	plan, err := ss.scheduler.GeneratePhases(archetypeCode, vehiclesPerRoad, emergencyRoads)
	if err != nil {
		ss.log.Debug("simulation rejected", zap.Int("intersection_type", archetypeCode), zap.Error(err))
		return nil, err
	}

	ss.log.Debug("simulation complete",
		zap.Int("intersection_type", archetypeCode),
		zap.Int("phases", len(plan.Phases)),
		zap.Bool("emergency_active", plan.EmergencyActive))
	return plan, nil
}

func (ss *SimulationService) IntersectionTypes() []catalog.Archetype {
	return catalog.Archetypes()
}

func (ss *SimulationService) VehicleTypes() []catalog.VehicleType {
	return catalog.VehicleTypes()
}
