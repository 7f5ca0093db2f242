// Command dvr runs the distance-vector routing simulation over a
// topology, message, and changes stream, writing forwarding tables and
// routed messages to the output file.
package main

import (
	"os"

	"github.com/eomielan/routing-protocols/distancevector"
	"github.com/eomielan/routing-protocols/internal/clirun"
	"github.com/eomielan/routing-protocols/internal/xlog"
	"github.com/eomielan/routing-protocols/routegraph"
)

func main() {
	log := xlog.Default()

	cfg, err := clirun.ParseArgs("dvr", os.Args[1:])
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	eng := distancevector.New(routegraph.NewGraph())
	os.Exit(clirun.Run(log, eng, cfg))
}
