package main

import (
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/urfave/cli/v2"
)

var tlds = &cli.Command{
	Name:      "tlds",
	Usage:     "checks whether the names are known top-level domains",
	ArgsUsage: "<domain...>",
	Action: func(c *cli.Context) error {
		if !c.Args().Present() {
			return cli.ShowSubcommandHelp(c)
		}

		unknown := 0
		for _, name := range c.Args().Slice() {
			name = strings.TrimPrefix(name, ".")
			known := entity.IsTLD(name)
			if !known {
				unknown++
			}
			fmt.Printf("%s\t%t\n", name, known)
		}

		if unknown > 0 {
			return cli.Exit("", 1)
		}
		return nil
	},
}
