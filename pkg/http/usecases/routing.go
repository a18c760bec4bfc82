package usecases

import (
	"github.com/adhika-w/trafficx/pkg"
	"github.com/adhika-w/trafficx/pkg/routing"
	"go.uber.org/zap"
)

// RoutingService wraps the graph builder and the shortest-path search for
// the transport layer.
type RoutingService struct {
	log *zap.Logger
}

func NewRoutingService(log *zap.Logger) *RoutingService {
	return &RoutingService{log: log}
}

// Route builds the adjacency for the submitted edge list and runs a single
// shortest-path query. Unreachable destinations are a normal outcome: the
// path comes back empty with the -1 cost sentinel and reachable=false.
func (rs *RoutingService) Route(edges []routing.Edge, start, destination string,
	useTraffic bool) ([]string, int, bool) {
	adj := routing.BuildAdjacency(edges, useTraffic)
	path, cost := routing.ShortestPath(adj, start, destination)

	reachable := cost != pkg.UNREACHABLE_COST
	if !reachable {
		rs.log.Debug("destination unreachable",
			zap.String("start", start), zap.String("destination", destination))
	}
	return path, cost, reachable
}
