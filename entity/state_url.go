package entity

import "strings"

var schemes = [...]string{"ttps://", "ttp://"}

// stepH is entered right after 'h'. The scheme is matched case-insensitively.
func (m *machine) stepH() state {
	i := m.last()

	for _, rest := range schemes {
		if m.r.IsFollowedBy(rest, true) {
			m.emitRange(Url, i, i+1+len(rest))
			m.r.Skip(len(rest))
			return stateUrl
		}
	}

	m.emit(Character, i)
	return stateData
}

// stepUrl takes everything up to the whitespace.
func (m *machine) stepUrl() state {
	c := m.r.Consume()

	if isSpaceOrEOF(c) {
		m.r.Pushback()
		return stateData
	}

	m.emit(Url, m.last())
	return stateUrl
}

// stepDot is entered right after '.' and decides between a custom suffix handle,
// a headless link and the plain text.
func (m *machine) stepDot() state {
	i := m.last()

	if i == 0 || isSpace(m.r.ReadAt(i-1)) {
		m.emit(Character, i)
		return stateData
	}

	for _, suffix := range m.cfg.CustomSuffixes {
		if m.r.IsFollowedBy(suffix, true) && m.endsWord(len(suffix)) {
			m.emitRange(CustomUser, m.wordStart(i), i+1+len(suffix))
			m.r.Skip(len(suffix))
			return stateData
		}
	}

	if isASCIIAlphanum(m.r.Peek()) {
		if start := m.hostStart(i); start < i {
			m.emitRange(Url, start, i+1)
			return stateHeadlessUrl
		}
	}

	m.emit(Character, i)
	return stateData
}

// endsWord reports whether the word ends right after the next n chars.
// A dot followed by an alphanumeric continues the word, e.g. "name.eth.limo".
func (m *machine) endsWord(n int) bool {
	c := m.r.PeekAt(n)
	if c == '.' {
		return !isASCIIAlphanum(m.r.PeekAt(n + 1))
	}
	return c != '-' && !isWordChar(c)
}

// stepHeadlessUrl takes the URL-safe chars, then validates the whole link by its top-level domain.
func (m *machine) stepHeadlessUrl() state {
	c := m.r.Consume()

	if isURLSafe(c) {
		m.emit(Url, m.last())
		return stateHeadlessUrl
	}

	m.r.Pushback()
	m.closeHeadlessUrl(m.r.Position())

	return stateData
}

// closeHeadlessUrl validates the link candidate [tokenStart, end).
// The trailing punctuation is given back to the text. If the top-level domain is unknown,
// the whole candidate becomes the text.
func (m *machine) closeHeadlessUrl(end int) {
	start := m.tokenStart

	stop := end
	for stop > start && isTrailingPunct(m.r.ReadAt(stop-1)) {
		stop--
	}

	if !isValidHost(m.r.Slice(start, stop-start)) {
		m.reject(end)
		return
	}

	m.relabel(stop, end, Character)
}

// isValidHost checks the top-level domain of the link, e.g. "io" of "vision.io/0x/dos".
// Only the leading letters of the last label count, so that a port does not spoil it.
func isValidHost(link string) bool {
	host := link
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}

	dot := strings.LastIndexByte(host, '.')
	if dot < 0 {
		return false
	}

	return IsTLD(leadingLetters(host[dot+1:]))
}
