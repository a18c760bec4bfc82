// Package main provides the trafficx CLI: offline phase-plan simulation and
// route computation from JSON request files.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adhika-w/trafficx/pkg/routing"
	"github.com/adhika-w/trafficx/pkg/signalplan"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trafficx",
		Short: "Emergency-vehicle priority signal planning & routing",
	}

	rootCmd.AddCommand(simulateCmd(), routeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type simulateFile struct {
	IntersectionType int                                  `json:"intersection_type"`
	VehiclesPerRoad  map[string][]signalplan.VehicleCount `json:"vehicles_per_road"`
	EmergencyRoads   []string                             `json:"emergency_roads"`
}

func simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <request.json>",
		Short: "Generate a signal phase plan from a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req simulateFile
			if err := readRequest(args[0], &req); err != nil {
				return err
			}

			scheduler := signalplan.NewScheduler(signalplan.DefaultPolicy())
			plan, err := scheduler.GeneratePhases(req.IntersectionType, req.VehiclesPerRoad, req.EmergencyRoads)
			if err != nil {
				return err
			}

			return printJSON(plan)
		},
	}
}

type routeFile struct {
	Edges       []routing.Edge `json:"edges"`
	Start       string         `json:"start"`
	Destination string         `json:"destination"`
	UseTraffic  *bool          `json:"use_traffic"`
}

func routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <request.json>",
		Short: "Compute the minimum-cost path from a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req routeFile
			if err := readRequest(args[0], &req); err != nil {
				return err
			}

			useTraffic := true
			if req.UseTraffic != nil {
				useTraffic = *req.UseTraffic
			}

			adj := routing.BuildAdjacency(req.Edges, useTraffic)
			path, cost := routing.ShortestPath(adj, req.Start, req.Destination)

			return printJSON(map[string]interface{}{
				"path":      path,
				"cost":      cost,
				"reachable": cost >= 0,
			})
		},
	}
}

func readRequest(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read request file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode request file: %w", err)
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
