package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/gookit/color"
)

var nodeStyles = map[entity.NodeType]color.Style{
	entity.NodeUrl:        color.New(color.FgBlue, color.OpUnderscore),
	entity.NodeCash:       color.New(color.FgGreen, color.OpBold),
	entity.NodeUserName:   color.New(color.FgMagenta),
	entity.NodeChannel:    color.New(color.FgCyan),
	entity.NodeCustomUser: color.New(color.FgYellow),
	entity.NodeHashTag:    color.New(color.FgRed),
}

// renderNodes writes one node per line: its type, byte span and the quoted value.
func renderNodes(w io.Writer, nodes []entity.Node, colored bool) {
	for _, n := range nodes {
		value := fmt.Sprintf("%q", n.Value)
		if style, ok := nodeStyles[n.Type]; ok && colored {
			value = style.Sprint(value)
		}
		fmt.Fprintf(w, "%-12s %4d:%-4d %s\n", n.Type, n.Span.Start, n.Span.End, value)
	}
}

// renderCategories writes every char of the text along with its category, skipping the end of input slot.
func renderCategories(w io.Writer, text string, categories []entity.Category) {
	var b strings.Builder

	i := 0
	for _, c := range text {
		if i >= len(categories) {
			break
		}
		fmt.Fprintf(&b, "%4d %q\t%s\n", i, c, categories[i])
		i++
	}

	io.WriteString(w, b.String())
}
