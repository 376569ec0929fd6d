package entity

// Span defines the byte bounds of a Node within the input string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int `json:"start"`

	// End defines the exclusive end of the view.
	End int `json:"end"`
}

// NewSpan creates new Span from the startIdx and the width.
// End index is calculated as startIdx + width.
func NewSpan(startIdx int, width int) Span {
	return Span{startIdx, startIdx + width}
}

// Len returns the number of bytes covered by the Span.
func (s Span) Len() int {
	return s.End - s.Start
}

// NodeType is the kind of a parsed Node.
type NodeType string

const (
	NodeText       NodeType = "text"
	NodeUrl        NodeType = "url"
	NodeCash       NodeType = "cash"
	NodeUserName   NodeType = "username"
	NodeChannel    NodeType = "channel"
	NodeCustomUser NodeType = "custom_user"
	NodeHashTag    NodeType = "hashtag"
)

// nodeTypes maps the per-char Categories to the Node kinds. Unclassified chars are plain text.
var nodeTypes = [NumCategories]NodeType{
	Unclassified: NodeText,
	Character:    NodeText,
	Url:          NodeUrl,
	Cash:         NodeCash,
	UserName:     NodeUserName,
	Channel:      NodeChannel,
	CustomUser:   NodeCustomUser,
	HashTag:      NodeHashTag,
}

// Node is a typed run of the input.
type Node struct {
	// Type is the kind of the entity, or [NodeText] for the plain text.
	Type NodeType `json:"type"`

	// Value is the exact substring of the input, leading markers like '@' or '$' included.
	Value string `json:"value"`

	// Span is the byte range of the Value within the input.
	Span Span `json:"span"`
}

// IsEntity returns false for the plain text.
func (n Node) IsEntity() bool {
	return n.Type != NodeText
}
