package content

import "github.com/Drolfothesgnir/castparse/entity"

// Schema is an implementation agnostic post-body content parser interface.
//
// The goal is to be able to maintain different body schemas.
type Schema interface {
	// Name returns the name of the particular body schema.
	Name() string

	// Version returns the version number of the particular body schema.
	Version() int32

	// Parse validates raw JSON and returns the canonical JSON, where every text
	// is accompanied by its entity Nodes.
	Parse(raw []byte) ([]byte, error)
}

// Extractor returns the entity Nodes of the text.
type Extractor func(text string) ([]entity.Node, error)
