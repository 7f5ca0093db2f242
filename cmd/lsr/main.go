// Command lsr runs the link-state routing simulation over a topology,
// message, and changes stream, writing forwarding tables and routed
// messages to the output file.
package main

import (
	"os"

	"github.com/eomielan/routing-protocols/internal/clirun"
	"github.com/eomielan/routing-protocols/internal/xlog"
	"github.com/eomielan/routing-protocols/linkstate"
	"github.com/eomielan/routing-protocols/routegraph"
)

func main() {
	log := xlog.Default()

	cfg, err := clirun.ParseArgs("lsr", os.Args[1:])
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	eng := linkstate.New(routegraph.NewGraph())
	os.Exit(clirun.Run(log, eng, cfg))
}
