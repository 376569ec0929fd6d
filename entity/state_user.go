package entity

// stepAt is entered right after '@'.
func (m *machine) stepAt() state {
	i := m.last()

	if isHandleChar(m.r.Peek()) {
		m.begin(UserName, i)
		return stateUserName
	}

	m.emit(Character, i)
	return stateData
}

// stepUserName takes the handle chars. A dot is a part of the name only if it is allowed
// and followed by an alphanumeric, so the sentence dot stays the text.
func (m *machine) stepUserName() state {
	c := m.r.Consume()

	if isHandleChar(c) || (c == '.' && m.cfg.AllowDotInUsername && isASCIIAlphanum(m.r.Peek())) {
		m.emit(UserName, m.last())
		return stateUserName
	}

	m.r.Pushback()
	return stateData
}
