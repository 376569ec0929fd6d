package entity

import (
	"unicode"

	"golang.org/x/text/width"
)

// charClass is a bit set of the properties of an ASCII char.
type charClass uint16

const (
	classAlpha charClass = 1 << iota
	classDigit
	classHandle    // [A-Za-z0-9_-]
	classURLMark   // punctuation which may legally end a cashtag
	classHost      // chars of a domain name
	classURLSafe   // chars of a headless link body
	classMagnitude // amount markers which disqualify a digit-led cashtag
	classTrailing  // punctuation trimmed from the end of a headless link
	classSpace
)

// asciiClasses maps every ASCII char to its properties. It is read-only.
// It must stay a var initializer: package level Parsers validate their suffixes against it.
var asciiClasses = buildASCIIClasses()

func buildASCIIClasses() [128]charClass {
	var t [128]charClass

	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classAlpha | classHandle | classHost | classURLSafe
		t[unicode.ToUpper(c)] |= classAlpha | classHandle | classHost | classURLSafe
	}

	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit | classHandle | classHost | classURLSafe
	}

	mark := func(class charClass, chars string) {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] |= class
		}
	}

	mark(classHandle, "_-")
	mark(classURLMark, "-._~:/?#[]@!$&'()*+,;=%")
	mark(classHost, "-_.")
	mark(classURLSafe, "-_./~%?=&+#:")
	mark(classMagnitude, "kKmMbB.,")
	mark(classTrailing, ".,:;?!'")
	mark(classSpace, " \t\n\r\f\v")

	return t
}

func hasClass(c rune, class charClass) bool {
	return c >= 0 && c < 128 && asciiClasses[c]&class != 0
}

func isSpace(c rune) bool {
	if c >= 0 && c < 128 {
		return asciiClasses[c]&classSpace != 0
	}
	return c != EOF && unicode.IsSpace(c)
}

// isSpaceOrEOF is true for any char which ends a word.
func isSpaceOrEOF(c rune) bool {
	return c == EOF || isSpace(c)
}

func isASCIIAlpha(c rune) bool    { return hasClass(c, classAlpha) }
func isASCIIDigit(c rune) bool    { return hasClass(c, classDigit) }
func isASCIIAlphanum(c rune) bool { return hasClass(c, classAlpha|classDigit) }
func isHandleChar(c rune) bool    { return hasClass(c, classHandle) }
func isURLMark(c rune) bool       { return hasClass(c, classURLMark) }
func isHostChar(c rune) bool      { return hasClass(c, classHost) }
func isURLSafe(c rune) bool       { return hasClass(c, classURLSafe) }
func isMagnitude(c rune) bool     { return hasClass(c, classMagnitude) }
func isTrailingPunct(c rune) bool { return hasClass(c, classTrailing) }

// isAlphanumeric is true for letters and digits in any script.
func isAlphanumeric(c rune) bool {
	if c < 128 {
		return isASCIIAlphanum(c)
	}
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// isWordChar is true for letters, digits and the underscore in any script.
func isWordChar(c rune) bool {
	if c < 128 {
		return c == '_' || isASCIIAlphanum(c)
	}
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// isFullWidth returns true for East-Asian wide and full-width code points which are
// neither symbols nor punctuation, e.g. CJK ideographs, kana and the full-width latin letters.
//
// The lookup works on the decoded code point, so the ideographs from the supplementary
// planes (U+20000 and up) are recognized as well.
func isFullWidth(c rune) bool {
	if c < 128 {
		return false
	}

	switch width.LookupRune(c).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return !unicode.IsSymbol(c) && !unicode.IsPunct(c) && !unicode.IsSpace(c)
	}

	return false
}
