package http

import (
	"context"

	http_router "github.com/adhika-w/trafficx/pkg/http/router"
	"github.com/adhika-w/trafficx/pkg/http/router/controllers"
	http_server "github.com/adhika-w/trafficx/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	simulationService controllers.SimulationService,
	routingService controllers.RoutingService,
	detectionService controllers.DetectionService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 8000)
	viper.SetDefault("WEBSOCKET_PORT", 8001)
	viper.SetDefault("PROXY_PORT", 8002)

	viper.SetDefault("API_TIMEOUT", "30s")

	config := http_server.Config{
		Port:          viper.GetInt("API_PORT"),
		WebsocketPort: viper.GetInt("WEBSOCKET_PORT"),
		ProxyPort:     viper.GetInt("PROXY_PORT"),
		Timeout:       viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g := errgroup.Group{}

	g.Go(func() error {
		return server.Run(
			ctx, config, log,
			useRateLimit, simulationService, routingService, detectionService,
		)
	})

	return s, nil
}
