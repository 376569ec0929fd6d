package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/urfave/cli/v2"
)

var parse = &cli.Command{
	Name:  "parse",
	Usage: "splits texts into plain text and entity nodes",
	Description: `example usage:
		castparse parse 'gm @dwr.eth, check /base and $DEGEN'
		echo 'visit warpcast.com #farcaster' | castparse parse --json
		castparse parse --suffix lens --suffix eth 'hello stani.lens'`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dot-in-username",
			Usage: "allow dots inside of @mentions",
		},
		&cli.StringSliceFlag{
			Name:    "suffix",
			Aliases: []string{"s"},
			Usage:   "custom handle suffix, can be repeated; replaces the default suffixes",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "print the nodes of each text as a JSON array",
		},
		&cli.BoolFlag{
			Name:    "entities",
			Aliases: []string{"e"},
			Usage:   "omit the plain text nodes",
		},
		&cli.BoolFlag{
			Name:  "categories",
			Usage: "print the category of every character instead of the nodes",
		},
	},
	ArgsUsage: "[text...]",
	Action: func(c *cli.Context) error {
		opts := []entity.Option{entity.WithDotInUsername(c.Bool("dot-in-username"))}
		if c.IsSet("suffix") {
			opts = append(opts, entity.WithCustomSuffixes(c.StringSlice("suffix")...))
		}

		parser, err := entity.NewParser(opts...)
		if err != nil {
			return err
		}

		lines, err := inputLines(c)
		if err != nil {
			return fmt.Errorf("cannot read the input: %w", err)
		}

		if len(lines) == 0 {
			return cli.ShowSubcommandHelp(c)
		}

		out := os.Stdout
		colored := !c.Bool("no-color")

		for _, text := range lines {
			if c.Bool("categories") {
				renderCategories(out, text, parser.Classify(text))
				continue
			}

			nodes := parser.Parse(text)
			if c.Bool("entities") {
				nodes = entity.Entities(nodes)
			}

			if c.Bool("json") {
				b, err := json.Marshal(nodes)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
				continue
			}

			renderNodes(out, nodes, colored)
		}

		return nil
	},
}
