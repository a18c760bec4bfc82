package usecases

import (
	"context"
	"time"

	"github.com/adhika-w/trafficx/pkg/concurrent"
	"github.com/adhika-w/trafficx/pkg/detection"
	"go.uber.org/zap"
)

// DetectionService runs provider inference on the worker pool and applies
// the signal-decision rule to the result. The pool bounds concurrent
// inference so a burst of frames cannot stall request handling.
type DetectionService struct {
	log      *zap.Logger
	provider detection.Provider
	decider  *detection.Decider
	pool     *concurrent.Pool
}

func NewDetectionService(log *zap.Logger, provider detection.Provider,
	decider *detection.Decider, pool *concurrent.Pool) *DetectionService {
	return &DetectionService{
		log:      log,
		provider: provider,
		decider:  decider,
		pool:     pool,
	}
}

type detectResult struct {
	dets []detection.Detection
	err  error
}

// Detect classifies one frame and returns the detections, the GREEN/RED
// decision, and per-frame stats.
func (ds *DetectionService) Detect(ctx context.Context, image []byte) ([]detection.Detection,
	detection.SignalDecision, detection.Stats, error) {
	start := time.Now()

	done := make(chan detectResult, 1)
	ds.pool.Schedule(func() {
		dets, err := ds.provider.Detect(ctx, image)
		done <- detectResult{dets: dets, err: err}
	})

	var res detectResult
	select {
	case res = <-done:
	case <-ctx.Done():
		return nil, detection.SignalDecision{}, detection.Stats{}, ctx.Err()
	}
	if res.err != nil {
		ds.log.Error("inference failed", zap.Error(res.err))
		return nil, detection.SignalDecision{}, detection.Stats{}, res.err
	}

	inferenceMs := float64(time.Since(start).Microseconds()) / 1000.0

	signal := ds.decider.DetermineSignal(res.dets)
	stats := detection.Summarize(res.dets, inferenceMs)

	if signal.Override {
		ds.log.Info("emergency override",
			zap.Strings("emergency_vehicles", signal.EmergencyVehicles))
	}

	return res.dets, signal, stats, nil
}
