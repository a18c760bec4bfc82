package main

import (
	"context"
	"flag"
	"time"

	"github.com/adhika-w/trafficx/pkg/concurrent"
	"github.com/adhika-w/trafficx/pkg/detection"
	"github.com/adhika-w/trafficx/pkg/http"
	"github.com/adhika-w/trafficx/pkg/http/usecases"
	"github.com/adhika-w/trafficx/pkg/logger"
	"github.com/adhika-w/trafficx/pkg/signalplan"
	"github.com/adhika-w/trafficx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the process-wide request rate limit")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Info("no config file found, using defaults")
	}

	viper.SetDefault("DETECTION_SERVICE_URL", "http://localhost:9000")
	viper.SetDefault("DETECTION_SERVICE_TIMEOUT", "10s")
	viper.SetDefault("DETECTION_CONFIDENCE_THRESHOLD", detection.DefaultConfidenceThreshold)
	viper.SetDefault("DETECTION_WORKERS", 2)

	scheduler := signalplan.NewScheduler(signalplan.PolicyFromConfig())

	provider := detection.NewHTTPProvider(
		viper.GetString("DETECTION_SERVICE_URL"),
		viper.GetDuration("DETECTION_SERVICE_TIMEOUT"),
	)
	decider := detection.NewDecider(viper.GetFloat64("DETECTION_CONFIDENCE_THRESHOLD"))

	workers := viper.GetInt("DETECTION_WORKERS")
	inferencePool := concurrent.NewPool(workers, workers*4, workers)

	api := http.NewServer(logger)

	simulationService := usecases.NewSimulationService(logger, scheduler)
	routingService := usecases.NewRoutingService(logger)
	detectionService := usecases.NewDetectionService(logger, provider, decider, inferencePool)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, simulationService, routingService, detectionService)

	signal := http.GracefulShutdown()

	logger.Info("TrafficX server stopped", zap.String("signal", signal.String()))
	cleanup()

	// give in-flight requests a moment to drain before the process exits
	time.Sleep(200 * time.Millisecond)
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
