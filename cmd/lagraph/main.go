// Command lagraph runs breadth-first search and shortest-path queries over
// an edge-list file.
//
//	lagraph bfs  --edges FILE --source ID [--dest ID] [--max-level K] [--relation R]... [--parents]
//	lagraph path --edges FILE --source ID --dest ID [--min-hops H] [--max-hops K] [--relation R]...
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
