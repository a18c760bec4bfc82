package controllers

import (
	"encoding/json"

	"github.com/adhika-w/trafficx/pkg/detection"
	"github.com/adhika-w/trafficx/pkg/routing"
	"github.com/adhika-w/trafficx/pkg/signalplan"
)

type vehicleCountRequest struct {
	Type  string `json:"type" validate:"required"`
	Count int    `json:"count"`
}

type simulationRequest struct {
	IntersectionType int                              `json:"intersection_type"`
	VehiclesPerRoad  map[string][]vehicleCountRequest `json:"vehicles_per_road" validate:"required"`
	EmergencyRoads   []string                         `json:"emergency_roads"`
}

func (req *simulationRequest) toVehiclesPerRoad() map[string][]signalplan.VehicleCount {
	out := make(map[string][]signalplan.VehicleCount, len(req.VehiclesPerRoad))
	for road, vehicles := range req.VehiclesPerRoad {
		counts := make([]signalplan.VehicleCount, 0, len(vehicles))
		for _, v := range vehicles {
			counts = append(counts, signalplan.VehicleCount{Type: v.Type, Count: v.Count})
		}
		out[road] = counts
	}
	return out
}

// edgeRequest accepts both the short "from"/"to" keys and the long
// "from_node"/"to_node" aliases older clients send.
type edgeRequest struct {
	From          string
	To            string
	Distance      int
	TrafficWeight int
}

func (e *edgeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		From          string `json:"from"`
		To            string `json:"to"`
		FromNode      string `json:"from_node"`
		ToNode        string `json:"to_node"`
		Distance      int    `json:"distance"`
		TrafficWeight int    `json:"traffic_weight"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.From = raw.From
	if e.From == "" {
		e.From = raw.FromNode
	}
	e.To = raw.To
	if e.To == "" {
		e.To = raw.ToNode
	}
	e.Distance = raw.Distance
	e.TrafficWeight = raw.TrafficWeight
	return nil
}

type routeRequest struct {
	Edges       []edgeRequest `json:"edges" validate:"required"`
	Start       string        `json:"start" validate:"required"`
	Destination string        `json:"destination" validate:"required"`
	UseTraffic  *bool         `json:"use_traffic"`
}

func (req *routeRequest) toEdges() []routing.Edge {
	edges := make([]routing.Edge, 0, len(req.Edges))
	for _, e := range req.Edges {
		edges = append(edges, routing.Edge{
			From:          e.From,
			To:            e.To,
			Distance:      e.Distance,
			TrafficWeight: e.TrafficWeight,
		})
	}
	return edges
}

func (req *routeRequest) useTraffic() bool {
	if req.UseTraffic == nil {
		return true
	}
	return *req.UseTraffic
}

type routeResponse struct {
	Path      []string `json:"path"`
	Cost      int      `json:"cost"`
	Reachable bool     `json:"reachable"`
}

func NewRouteResponse(path []string, cost int, reachable bool) routeResponse {
	return routeResponse{
		Path:      path,
		Cost:      cost,
		Reachable: reachable,
	}
}

type detectResponse struct {
	Detections []detection.Detection    `json:"detections"`
	Signal     detection.SignalDecision `json:"signal"`
	Stats      detection.Stats          `json:"stats"`
}

func NewDetectResponse(dets []detection.Detection, signal detection.SignalDecision,
	stats detection.Stats) detectResponse {
	return detectResponse{
		Detections: dets,
		Signal:     signal,
		Stats:      stats,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
