package entity

// state is a tag of the tokenizer state.
type state uint8

const (
	stateData state = iota
	stateH
	stateUrl
	stateDollar
	stateCashTag
	stateDigitCash
	stateCJKCashTag
	stateAt
	stateUserName
	stateSlash
	stateChannelName
	stateDot
	stateHeadlessUrl
	stateHash
	stateHashTag
)

// step performs one transition from the state s and returns the next state.
func (m *machine) step(s state) state {
	switch s {
	case stateH:
		return m.stepH()
	case stateUrl:
		return m.stepUrl()
	case stateDollar:
		return m.stepDollar()
	case stateCashTag:
		return m.stepCashTag()
	case stateDigitCash:
		return m.stepDigitCash()
	case stateCJKCashTag:
		return m.stepCJKCashTag()
	case stateAt:
		return m.stepAt()
	case stateUserName:
		return m.stepUserName()
	case stateSlash:
		return m.stepSlash()
	case stateChannelName:
		return m.stepChannelName()
	case stateDot:
		return m.stepDot()
	case stateHeadlessUrl:
		return m.stepHeadlessUrl()
	case stateHash:
		return m.stepHash()
	case stateHashTag:
		return m.stepHashTag()
	default:
		return m.stepData()
	}
}

// stepData dispatches on the trigger chars and marks everything else as the plain text.
func (m *machine) stepData() state {
	c := m.r.Consume()

	switch c {
	case 'h', 'H':
		return stateH
	case '$':
		return stateDollar
	case '@':
		return stateAt
	case '/':
		return stateSlash
	case '.':
		return stateDot
	case '#':
		return stateHash
	case EOF:
		m.emit(EndOfInput, m.last())
	default:
		m.emit(Character, m.last())
	}

	return stateData
}
