package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		categories []Category
		want       []Node
	}{
		{
			name:       "empty",
			input:      "",
			categories: expect(),
			want:       []Node{},
		},
		{
			name:       "text only",
			input:      "abc",
			categories: expect(run{"abc", Character}),
			want:       []Node{{Type: NodeText, Value: "abc", Span: NewSpan(0, 3)}},
		},
		{
			name:       "unclassified is text",
			input:      "ab",
			categories: []Category{Unclassified, Character, EndOfInput},
			want:       []Node{{Type: NodeText, Value: "ab", Span: NewSpan(0, 2)}},
		},
		{
			name:       "runs",
			input:      "hi @a",
			categories: expect(run{"hi ", Character}, run{"@a", UserName}),
			want: []Node{
				{Type: NodeText, Value: "hi ", Span: NewSpan(0, 3)},
				{Type: NodeUserName, Value: "@a", Span: NewSpan(3, 2)},
			},
		},
		{
			name:       "adjacent tokens of the same kind",
			input:      "@a@b",
			categories: expect(run{"@a@b", UserName}),
			want:       []Node{{Type: NodeUserName, Value: "@a@b", Span: NewSpan(0, 4)}},
		},
		{
			name:       "adjacent tokens of different kinds",
			input:      "@a$b",
			categories: expect(run{"@a", UserName}, run{"$b", Cash}),
			want: []Node{
				{Type: NodeUserName, Value: "@a", Span: NewSpan(0, 2)},
				{Type: NodeCash, Value: "$b", Span: NewSpan(2, 2)},
			},
		},
		{
			name:       "multibyte",
			input:      "€ $中",
			categories: expect(run{"€ ", Character}, run{"$中", Cash}),
			want: []Node{
				{Type: NodeText, Value: "€ ", Span: NewSpan(0, 4)},
				{Type: NodeCash, Value: "$中", Span: NewSpan(4, 4)},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildTree(NewReader(tc.input), tc.categories)
			require.Equal(t, tc.want, got)
		})
	}
}
