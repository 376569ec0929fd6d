package entity

import (
	"unicode"
	"unicode/utf8"
)

// EOF is returned by the [Reader] when the cursor is at, or past, the end of the input.
const EOF rune = -1

// Reader is a random-access cursor over the characters of the input string.
//
// A character is a UTF-8 code point. Bytes which are not valid UTF-8 are treated as
// a single character each. All the indexes accepted and returned by the Reader are
// character indexes; use [Reader.Span] to convert them into byte offsets.
//
// Besides the real characters the Reader exposes one extra slot, the end of the input.
// It can be consumed exactly once and makes [Reader.HasNext] return false.
type Reader struct {
	input string

	// chars are the decoded code points of the input.
	chars []rune

	// offsets[i] is the byte offset of the chars[i] in the input.
	// It has one more item than chars, pointing at the end of the input.
	offsets []int

	// pos is the number of consumed characters, the end of the input included.
	pos int

	// canPushback is true only right after a Consume.
	canPushback bool
}

// NewReader decodes the input and returns a Reader positioned before the first character.
func NewReader(input string) *Reader {
	n := utf8.RuneCountInString(input)

	r := &Reader{
		input:   input,
		chars:   make([]rune, 0, n),
		offsets: make([]int, 0, n+1),
	}

	// for invalid bytes the range loop yields utf8.RuneError with a 1-byte step,
	// which keeps offsets exact
	for i, c := range input {
		r.chars = append(r.chars, c)
		r.offsets = append(r.offsets, i)
	}

	r.offsets = append(r.offsets, len(input))

	return r
}

// Len returns the number of characters in the input.
func (r *Reader) Len() int {
	return len(r.chars)
}

// Position returns the number of characters consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// HasNext is true until the end of the input has been consumed.
func (r *Reader) HasNext() bool {
	return r.pos <= len(r.chars)
}

// Consume returns the next character, or [EOF], and advances the cursor.
// It panics when called after the end of the input was already consumed.
func (r *Reader) Consume() rune {
	if r.pos > len(r.chars) {
		panic("entity: Reader.Consume called after the end of the input")
	}

	r.canPushback = true

	c := r.charAt(r.pos)
	r.pos++
	return c
}

// Skip consumes n characters.
func (r *Reader) Skip(n int) {
	for i := 0; i < n; i++ {
		r.Consume()
	}
}

// Pushback moves the cursor back by exactly one character.
// Two pushbacks in a row are a programmer error and cause a panic.
func (r *Reader) Pushback() {
	if !r.canPushback || r.pos == 0 {
		panic("entity: Reader.Pushback must follow a Consume")
	}

	r.canPushback = false
	r.pos--
}

// Peek returns the character under the cursor without consuming it.
func (r *Reader) Peek() rune {
	return r.charAt(r.pos)
}

// PeekAt returns the character offset positions after the cursor without consuming anything.
// PeekAt(0) is the same as Peek.
func (r *Reader) PeekAt(offset int) rune {
	return r.charAt(r.pos + offset)
}

// IsFollowedBy reports whether the characters under the cursor spell the literal.
// The cursor is not moved.
func (r *Reader) IsFollowedBy(literal string, ignoreCase bool) bool {
	i := r.pos
	for _, want := range literal {
		got := r.charAt(i)
		if got == EOF {
			return false
		}

		if got != want && !(ignoreCase && unicode.ToLower(got) == unicode.ToLower(want)) {
			return false
		}
		i++
	}
	return true
}

// ReadAt returns the character at the index, or [EOF] if the index is out of the input.
func (r *Reader) ReadAt(index int) rune {
	return r.charAt(index)
}

// Slice returns the exact substring of the input which holds length characters starting at start.
func (r *Reader) Slice(start, length int) string {
	s := r.Span(start, start+length)
	return r.input[s.Start:s.End]
}

// Span converts the character range [start, end) into the byte range of the input.
func (r *Reader) Span(start, end int) Span {
	return Span{Start: r.offsets[start], End: r.offsets[end]}
}

func (r *Reader) charAt(i int) rune {
	if i < 0 || i >= len(r.chars) {
		return EOF
	}
	return r.chars[i]
}
