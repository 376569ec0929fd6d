package entity

// stepSlash is entered right after '/'. The channel starts a word and its name can't begin with '-'.
func (m *machine) stepSlash() state {
	i := m.last()
	next := m.r.Peek()

	if (i == 0 || isSpace(m.r.ReadAt(i-1))) && next != '-' && isHandleChar(next) {
		m.begin(Channel, i)
		return stateChannelName
	}

	m.emit(Character, i)
	return stateData
}

// stepChannelName takes the handle chars. Another '/' means a path, not a channel.
func (m *machine) stepChannelName() state {
	c := m.r.Consume()

	switch {
	case isHandleChar(c):
		m.emit(Channel, m.last())
		return stateChannelName
	case c == '/':
		m.reject(m.last())
	}

	m.r.Pushback()
	return stateData
}
