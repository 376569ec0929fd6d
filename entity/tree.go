package entity

// BuildTree coalesces the maximal runs of the same Category into Nodes, preserving the order.
//
// The categories must hold one slot per char of the Reader's input; the trailing EndOfInput slot
// is ignored. Unclassified and Character chars both become the text. Adjacent tokens of the same
// kind, like in "@a@b", end up in a single Node.
//
// Concatenating the Values of the result gives back the input.
func BuildTree(r *Reader, categories []Category) []Node {
	n := r.Len()
	nodes := make([]Node, 0, 4)

	if n == 0 {
		return nodes
	}

	runStart := 0
	for i := 1; i <= n; i++ {
		if i < n && nodeTypeOf(categories[i]) == nodeTypeOf(categories[runStart]) {
			continue
		}

		nodes = append(nodes, Node{
			Type:  nodeTypeOf(categories[runStart]),
			Value: r.Slice(runStart, i-runStart),
			Span:  r.Span(runStart, i),
		})

		runStart = i
	}

	return nodes
}

func nodeTypeOf(c Category) NodeType {
	if c < NumCategories && nodeTypes[c] != "" {
		return nodeTypes[c]
	}
	return NodeText
}
