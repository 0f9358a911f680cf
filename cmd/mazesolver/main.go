// Command mazesolver compares grid path-finding algorithms on a maze file.
//
// Usage:
//
//	mazesolver solve maze.yaml [--algorithm a*,bfs,dfs] [--start r,c] [--goal r,c]
//	mazesolver generate out.yaml --rows 21 --cols 21 [--carved]
//	mazesolver inspect maze.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
