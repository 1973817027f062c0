package scrub

import (
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseOption configures [CapitaliseFirst].
type CaseOption func(*caseOptions)

type caseOptions struct {
	lowercase        bool
	afterPunctuation bool
}

// LowercaseRest lower-cases the whole string before capitalising.
func LowercaseRest() CaseOption {
	return func(o *caseOptions) { o.lowercase = true }
}

// AfterPunctuation also capitalises the first letter after each '.', '!' or
// '?' that is followed by whitespace.
func AfterPunctuation() CaseOption {
	return func(o *caseOptions) { o.afterPunctuation = true }
}

// sentenceStart matches an ending punctuation mark, the whitespace after it
// and a lower-case ASCII letter.
var sentenceStart = regexp.MustCompile(`[!?.][\s\v\p{Z}\x{FEFF}]+[a-z]`)

// CapitaliseFirst returns s with its first letter upper-cased.
//
//	s, _ := scrub.CapitaliseFirst("this works. so does this!", scrub.AfterPunctuation())
//	// "This works. So does this!"
func CapitaliseFirst(s string, opts ...CaseOption) (string, error) {
	if err := validation.Validate(s, validation.Required); err != nil {
		return "", argumentError(KindMissingArgument, err)
	}
	var o caseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.lowercase {
		s = cases.Lower(language.Und).String(s)
	}
	if o.afterPunctuation {
		s = sentenceStart.ReplaceAllStringFunc(s, func(m string) string {
			last := len(m) - 1
			return m[:last] + string(m[last]-'a'+'A')
		})
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s, nil
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:], nil
}
