package content

import "github.com/Drolfothesgnir/castparse/entity"

// Kind is the presentation hint of a section. Unknown kinds are passed through as is.
type Kind string

const KindDefault Kind = "default"

func (k Kind) orDefault() Kind {
	if k == "" {
		return KindDefault
	}
	return k
}

// Type is the discriminator of a content item, the "type" field of its JSON object.
type Type string

const (
	TypeParagraph Type = "paragraph"
	TypeQuote     Type = "quote"
	TypeList      Type = "list"
	TypeCode      Type = "code"
	TypeDivider   Type = "divider"
)

// ContentItem is a parsed item of a section.
type ContentItem interface {
	ContentType() Type

	// Entities returns the entity nodes found in the item's texts, in the order of appearance.
	Entities() []entity.Node
}

// Typed is embedded by every item to carry its "type" field.
type Typed struct {
	Type Type `json:"type"`
}

func (t Typed) ContentType() Type { return t.Type }

func (p *Paragraph) Entities() []entity.Node { return entity.Entities(p.Nodes) }

func (q *Quote) Entities() []entity.Node { return entity.Entities(q.Nodes) }

func (l *List) Entities() []entity.Node {
	var out []entity.Node
	for _, item := range l.Items {
		out = append(out, entity.Entities(item.Nodes)...)
	}
	return out
}

func (*Code) Entities() []entity.Node { return nil }

func (Divider) Entities() []entity.Node { return nil }
