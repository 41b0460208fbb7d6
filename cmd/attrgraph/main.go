// Command attrgraph builds, inspects and slices attributed graphs stored as
// node-link JSON or YAML documents.
//
//	attrgraph build cycle --n 6 --ids symbol -o ring.yaml
//	attrgraph stats ring.yaml
//	attrgraph neighbors ring.yaml A
//	attrgraph subgraph ring.yaml A B C --format json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
