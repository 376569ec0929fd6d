package entity

func (m *machine) stepHash() state {
	i := m.last()
	c := m.r.Peek()

	if isAlphanumeric(c) {
		m.begin(HashTag, i)
		return stateHashTag
	}

	m.emit(Character, i)
	return stateData
}

func (m *machine) stepHashTag() state {
	c := m.r.Consume()

	if isAlphanumeric(c) {
		m.emit(HashTag, m.last())
		return stateHashTag
	}

	m.r.Pushback()
	return stateData
}
