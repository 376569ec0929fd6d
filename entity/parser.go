package entity

import (
	"strconv"
	"strings"
)

// DefaultSuffixes are the custom suffixes of the handles from the other platforms, in the order of matching.
var DefaultSuffixes = []string{"twitter", "lens", "github", "telegram", "eth"}

// Config defines the tokenizer behaviour.
type Config struct {
	// AllowDotInUsername lets the mentions contain dots, like "@name.eth".
	AllowDotInUsername bool

	// CustomSuffixes are matched case-insensitively after a dot, first match wins.
	// A word ending with one of them becomes a [CustomUser] handle, e.g. "name.twitter".
	CustomSuffixes []string
}

// Option modifies the Config of the Parser being created.
type Option func(*Config)

// WithDotInUsername allows or disallows the dots inside the mentions.
func WithDotInUsername(allow bool) Option {
	return func(c *Config) {
		c.AllowDotInUsername = allow
	}
}

// WithCustomSuffixes replaces the [DefaultSuffixes]. No suffixes at all disables the custom handles.
func WithCustomSuffixes(suffixes ...string) Option {
	return func(c *Config) {
		c.CustomSuffixes = append([]string(nil), suffixes...)
	}
}

// Parser extracts the entities from the text. It holds no mutable state and is safe for concurrent use.
type Parser struct {
	cfg Config
}

// NewParser creates a Parser with [DefaultSuffixes] and dots disallowed in the mentions,
// modified by the opts. It returns a *ConfigError if a suffix is empty or contains chars
// other than ASCII letters, digits, '_' or '-'.
func NewParser(opts ...Option) (*Parser, error) {
	cfg := Config{
		CustomSuffixes: append([]string(nil), DefaultSuffixes...),
	}

	for _, opt := range opts {
		if opt == nil {
			return nil, ErrNilOption
		}
		opt(&cfg)
	}

	for i, s := range cfg.CustomSuffixes {
		if err := validateSuffix(i, s); err != nil {
			return nil, err
		}
	}

	return &Parser{cfg: cfg}, nil
}

func validateSuffix(idx int, s string) error {
	if s == "" {
		return newEmptySuffixError(idx)
	}

	for _, c := range s {
		if !isHandleChar(c) {
			return newInvalidSuffixError(s, c)
		}
	}

	return nil
}

var defaultParser = &Parser{
	cfg: Config{CustomSuffixes: append([]string(nil), DefaultSuffixes...)},
}

// Default returns the Parser with the default configuration.
func Default() *Parser {
	return defaultParser
}

// Parse splits the text into the Nodes using the default configuration.
func Parse(text string) []Node {
	return defaultParser.Parse(text)
}

// Config returns a copy of the Parser's configuration.
func (p *Parser) Config() Config {
	return Config{
		AllowDotInUsername: p.cfg.AllowDotInUsername,
		CustomSuffixes:     append([]string(nil), p.cfg.CustomSuffixes...),
	}
}

// Fingerprint is a stable string identifying the configuration.
// Parsers with equal fingerprints produce equal results.
func (p *Parser) Fingerprint() string {
	var sb strings.Builder
	sb.WriteString("dot=")
	sb.WriteString(strconv.FormatBool(p.cfg.AllowDotInUsername))
	sb.WriteString(";suffixes=")
	for i, s := range p.cfg.CustomSuffixes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strings.ToLower(s))
	}
	return sb.String()
}

// Parse splits the text into the ordered Nodes. The Nodes cover the whole text without gaps,
// a text without entities yields a single [NodeText] Node. An empty text yields no Nodes.
func (p *Parser) Parse(text string) []Node {
	r := NewReader(text)
	m := p.tokenize(r)
	return BuildTree(r, m.categories)
}

// Classify returns the Category of every char of the text, followed by the EndOfInput slot.
func (p *Parser) Classify(text string) []Category {
	return p.tokenize(NewReader(text)).categories
}

func (p *Parser) tokenize(r *Reader) *machine {
	m := newMachine(r, &p.cfg)
	m.run()
	return m
}

// Filter returns the Nodes of the given types, keeping the order.
func Filter(nodes []Node, types ...NodeType) []Node {
	var out []Node
	for _, n := range nodes {
		for _, t := range types {
			if n.Type == t {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// Entities returns all the Nodes except the plain text.
func Entities(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if n.IsEntity() {
			out = append(out, n)
		}
	}
	return out
}
