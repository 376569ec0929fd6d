package entity

// Issue defines types of problems found in the [Parser] configuration.
type Issue int

const (
	// IssueEmptySuffix means one of the custom suffixes is an empty string.
	IssueEmptySuffix Issue = iota

	// IssueInvalidSuffix means the custom suffix contains a char other than an ASCII letter, a digit,
	// the underscore or the dash.
	IssueInvalidSuffix
)
