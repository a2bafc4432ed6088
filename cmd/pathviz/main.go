// Command pathviz runs grid searches from the command line and serves the
// interactive visualizer API.
//
//	pathviz run --layout maze.yaml --algorithms "A*,Dijkstra" --color
//	pathviz serve --listen :8080 --step-delay 20ms
//	pathviz history --limit 10
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
