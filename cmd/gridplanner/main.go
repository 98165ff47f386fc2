// Command gridplanner plans an ordered, kinematically feasible snapshot tour for a
// differential-drive robot on a bounded arena of oriented obstacles.
package main

import (
	"fmt"
	"os"

	"github.com/malcolmfong01/SC2079-Algo/cli"
)

func main() {
	if err := cli.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
