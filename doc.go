// Package metro is a routing and fare engine for metro networks.
//
// The module is organized in layers:
//
//	core/       undirected weighted track graph, frozen after load
//	network/    station and line registries, Builder → Network
//	dijkstra/   shortest path and stations within a distance budget
//	dfs/        every simple path between two stations
//	bfs/        fewest-stops routes
//	itinerary/  ride legs at line-change boundaries
//	fare/       tiered single-journey, stored-value and day-pass fares
//	loader/     text and YAML topology files
//	config/     YAML configuration
//	router/     query facade with an LRU result cache
//	cmd/metro/  command-line front end
//
// Quick start:
//
//	cfg, err := config.Load("metro.yml")
//	r, err := router.Open(cfg)
//	plan, err := r.Plan("Hankou", "Zhongshan Park")
//	fmt.Print(itinerary.Describe(plan.Legs))
//
// Every query runs on immutable state, so a Router can be shared across
// goroutines.
package metro
