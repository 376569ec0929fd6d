package entity

// stepDollar is entered right after '$' and picks the cashtag flavour by the next char.
func (m *machine) stepDollar() state {
	i := m.last()
	c := m.r.Peek()

	switch {
	case isASCIIAlpha(c):
		m.begin(Cash, i)
		return stateCashTag
	case isASCIIDigit(c):
		m.begin(Cash, i)
		return stateDigitCash
	case isFullWidth(c):
		m.begin(Cash, i)
		return stateCJKCashTag
	}

	m.emit(Character, i)
	return stateData
}

// stepCashTag takes the ASCII alphanumerics up to MaxCashTagLen.
// The cashtag must be followed by the whitespace, the end of the input or a URL punctuation,
// otherwise it is the text.
func (m *machine) stepCashTag() state {
	c := m.r.Consume()

	switch {
	case isASCIIAlphanum(c):
		return m.takeCash(MaxCashTagLen, stateCashTag)
	case isSpaceOrEOF(c) || isURLMark(c):
		m.r.Pushback()
	default:
		m.reject(m.last())
		m.r.Pushback()
	}

	return stateData
}

// stepDigitCash works like stepCashTag, but the amount markers like in "$5k" or "$1.5"
// turn the whole run into the text.
func (m *machine) stepDigitCash() state {
	c := m.r.Consume()

	switch {
	case isMagnitude(c):
		m.reject(m.last())
		m.r.Pushback()
	case isASCIIAlphanum(c):
		return m.takeCash(MaxDigitCashTagLen, stateDigitCash)
	case isSpaceOrEOF(c) || isURLMark(c):
		m.r.Pushback()
	default:
		m.reject(m.last())
		m.r.Pushback()
	}

	return stateData
}

// stepCJKCashTag takes the full-width chars mixed with the ASCII alphanumerics and the underscore.
// Any other char simply ends the cashtag.
func (m *machine) stepCJKCashTag() state {
	c := m.r.Consume()

	if isFullWidth(c) || isASCIIAlphanum(c) || c == '_' {
		return m.takeCash(MaxCJKCashTagLen, stateCJKCashTag)
	}

	m.r.Pushback()
	return stateData
}

// takeCash marks the last consumed char as Cash and leaves the cashtag once it holds limit chars.
func (m *machine) takeCash(limit int, s state) state {
	m.emit(Cash, m.last())
	m.count++

	if m.count >= limit {
		return stateData
	}
	return s
}
