package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/castparse/entity"
)

type Quote struct {
	Typed
	Text   string        `json:"text"`   // Required. Quote's body.
	Author string        `json:"author"` // Optional.
	Nodes  []entity.Node `json:"nodes"`  // Output only.
}

func NewQuote(raw json.RawMessage, extract Extractor) (*Quote, error) {
	var q Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}

	if strings.TrimSpace(q.Text) == "" {
		return nil, errors.New("quote: text is required")
	}

	nodes, err := extract(q.Text)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	q.Nodes = nodes
	return &q, nil
}

const (
	ListStyleBullet   = "bullet"
	ListStyleNumbered = "numbered"
)

type List struct {
	Typed
	Style string     `json:"style"` // Required. Can be one of "bullet" or "numbered".
	Items []ListItem `json:"items"` // Required, not empty.
}

type ListItem struct {
	Text  string        `json:"text"`
	Nodes []entity.Node `json:"nodes"`
}

func NewList(raw json.RawMessage, extract Extractor) (*List, error) {
	var aux struct {
		Typed
		Style string   `json:"style"`
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return nil, err
	}

	if aux.Style != ListStyleBullet && aux.Style != ListStyleNumbered {
		return nil, fmt.Errorf("list: unknown style %q", aux.Style)
	}
	if len(aux.Items) == 0 {
		return nil, errors.New("list: items must not be empty")
	}

	l := List{Typed: aux.Typed, Style: aux.Style, Items: make([]ListItem, len(aux.Items))}
	for i, text := range aux.Items {
		nodes, err := extract(text)
		if err != nil {
			return nil, fmt.Errorf("list.items[%d]: %w", i, err)
		}
		l.Items[i] = ListItem{Text: text, Nodes: nodes}
	}

	return &l, nil
}

// Code is kept as is, entities inside the code are not extracted.
type Code struct {
	Typed
	Language string `json:"language"` // Optional. Can be "go", "js", "sql", etc.
	Code     string `json:"code"`     // Required.
}

func NewCode(raw json.RawMessage) (*Code, error) {
	var c Code
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	if c.Code == "" {
		return nil, errors.New("code: code is required")
	}

	return &c, nil
}

// Content divider.
type Divider struct {
	Typed
}
