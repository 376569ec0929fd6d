package entity

// Category is the semantic tag the tokenizer assigns to every single character of the input.
type Category uint8

const (
	// Unclassified is the zero value of a slot nobody has written to. The tree builder treats it as plain text.
	Unclassified Category = iota

	// Character means the char is plain text.
	Character

	// Url marks chars of an explicit (with scheme) or a headless link.
	Url

	// Cash marks chars of a cashtag, including the leading '$'.
	Cash

	// UserName marks chars of a mention, including the leading '@'.
	UserName

	// Channel marks chars of a channel reference, including the leading '/'.
	Channel

	// CustomUser marks chars of a suffix-based handle, like "name.twitter".
	CustomUser

	// HashTag marks chars of a hashtag, including the leading '#'.
	HashTag

	// EndOfInput is written into the extra trailing slot of the category array.
	EndOfInput

	// NumCategories is the total number of Categories. Should be placed as last const.
	NumCategories
)

var categoryNames = [NumCategories]string{
	Unclassified: "Unclassified",
	Character:    "Character",
	Url:          "Url",
	Cash:         "Cash",
	UserName:     "UserName",
	Channel:      "Channel",
	CustomUser:   "CustomUser",
	HashTag:      "HashTag",
	EndOfInput:   "EndOfInput",
}

func (c Category) String() string {
	if c < NumCategories {
		return categoryNames[c]
	}
	return "Category(?)"
}

// isToken returns true if the category belongs to some entity, not to the plain text.
func (c Category) isToken() bool {
	return c > Character && c < EndOfInput
}
