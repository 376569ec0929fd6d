package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/castparse/entity"
)

type Paragraph struct {
	Typed
	Text  string        `json:"text"`  // Required. Plain post text.
	Nodes []entity.Node `json:"nodes"` // Output only. Entities of the Text.
}

// NewParagraph parses raw json paragraph data and extracts the entities of its text.
func NewParagraph(raw json.RawMessage, extract Extractor) (*Paragraph, error) {
	var p Paragraph
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	if p.Type != TypeParagraph {
		return nil, fmt.Errorf("paragraph: expected type %q, got %q", TypeParagraph, p.Type)
	}

	if strings.TrimSpace(p.Text) == "" {
		return nil, errors.New("paragraph: text is required")
	}

	nodes, err := extract(p.Text)
	if err != nil {
		return nil, fmt.Errorf("paragraph: %w", err)
	}

	p.Nodes = nodes
	return &p, nil
}
