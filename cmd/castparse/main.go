package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:  "castparse",
	Usage: "extracts links, mentions, channels, cashtags and hashtags from post texts",
	Commands: []*cli.Command{
		parse,
		tlds,
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "do not colorize the output",
			EnvVars: []string{"NO_COLOR"},
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
