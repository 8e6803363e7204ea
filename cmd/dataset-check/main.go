// Command dataset-check validates a boundary dataset file the same way
// the server loads it at startup, reporting record counts and coverage,
// and optionally probing a point through the resolver.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/seerai/boundaries-api/internal/domain"
	"github.com/seerai/boundaries-api/internal/usecase"
)

func main() {
	datasetPath := flag.String("dataset", "./data/boundaries.geojson", "Path to the GeoJSON boundary dataset")
	probeLon := flag.Float64("lon", 0, "Longitude to probe (requires -probe)")
	probeLat := flag.Float64("lat", 0, "Latitude to probe (requires -probe)")
	probe := flag.Bool("probe", false, "Resolve the given -lon/-lat after loading")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	resolver, err := usecase.Initialize(*datasetPath, log, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dataset check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dataset: %s\n", *datasetPath)
	fmt.Printf("Polygons loaded: %d\n", resolver.PolygonCount())

	box := domain.NewBoundingBox()
	ids := resolver.BoundaryIDs()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	for _, p := range resolver.Coverage() {
		box.Extend(domain.Point{Lon: p.MinLon, Lat: p.MinLat})
		box.Extend(domain.Point{Lon: p.MaxLon, Lat: p.MaxLat})
	}
	fmt.Printf("Distinct identifiers: %d\n", len(seen))
	fmt.Printf("Coverage: lon [%.6f, %.6f], lat [%.6f, %.6f]\n",
		box.MinLon, box.MaxLon, box.MinLat, box.MaxLat)

	if *probe {
		result, err := resolver.Resolve(*probeLon, *probeLat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "probe failed: %v\n", err)
			os.Exit(1)
		}
		if !result.Found {
			fmt.Printf("Probe (%.6f, %.6f): no containing boundary\n", *probeLon, *probeLat)
			return
		}
		fmt.Printf("Probe (%.6f, %.6f): %s\n", *probeLon, *probeLat, result.ID)
		for k, v := range result.Attributes {
			fmt.Printf("  %s: %v\n", k, v)
		}
	}
}
