package entity

const (
	// MaxCashTagLen is the maximum number of chars after '$' in the ASCII cashtag.
	MaxCashTagLen = 20

	// MaxDigitCashTagLen is the maximum number of chars after '$' in the cashtag which starts with a digit.
	MaxDigitCashTagLen = 10

	// MaxCJKCashTagLen is the maximum number of chars after '$' in the full-width cashtag.
	MaxCJKCashTagLen = 10
)

// machine is the tokenizer. It walks the input once and writes exactly one Category
// per char into categories.
type machine struct {
	r   *Reader
	cfg *Config

	// categories has one slot per char plus the trailing EndOfInput slot.
	categories []Category

	// tokenStart is the index of the first char of the current candidate token.
	tokenStart int

	// count is the number of body chars consumed by the capped cashtag states.
	count int
}

func newMachine(r *Reader, cfg *Config) *machine {
	return &machine{
		r:          r,
		cfg:        cfg,
		categories: make([]Category, r.Len()+1),
	}
}

// run tokenizes the whole input, starting in the Data state.
func (m *machine) run() {
	s := stateData
	for m.r.HasNext() {
		s = m.step(s)
	}
}

// last returns the index of the most recently consumed char.
func (m *machine) last() int {
	return m.r.Position() - 1
}

// emit sets the Category of the char i.
func (m *machine) emit(cat Category, i int) {
	m.categories[i] = cat
}

// begin opens a new candidate token at the char i.
func (m *machine) begin(cat Category, i int) {
	m.tokenStart = i
	m.count = 0
	m.categories[i] = cat
}

// emitRange opens a new token covering the chars [start, end), replacing whatever was there.
func (m *machine) emitRange(cat Category, start, end int) {
	m.tokenStart = start
	for i := start; i < end; i++ {
		m.categories[i] = cat
	}
}

// reject relabels the current candidate, from its start up to the char end (exclusive), to Character.
func (m *machine) reject(end int) {
	m.relabel(m.tokenStart, end, Character)
}

func (m *machine) relabel(start, end int, cat Category) {
	for i := start; i < end; i++ {
		m.categories[i] = cat
	}
}

// wordStart returns the index right after the nearest whitespace before the char i, or 0.
func (m *machine) wordStart(i int) int {
	for i > 0 && !isSpace(m.r.ReadAt(i-1)) {
		i--
	}
	return i
}

// hostStart scans backward from the char i over the host chars, which were not taken by any token yet.
// The result equals i when there is no such char right before i.
func (m *machine) hostStart(i int) int {
	for i > 0 && isHostChar(m.r.ReadAt(i-1)) && !m.categories[i-1].isToken() {
		i--
	}
	return i
}
