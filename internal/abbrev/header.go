package abbrev

import (
	"strings"
	"unicode/utf8"

	"header-abbrev/internal/common"
)

// HeaderTrace records how a header was abbreviated.
type HeaderTrace struct {
	Header string
	Tokens []string
	// Words holds one trace per token, in token order.
	Words []WordTrace
	// Joined is the plain concatenation of the abbreviated words.
	Joined string
	// Initials is set when Joined was too long and the leading words were
	// reduced to their first character.
	Initials bool
	// Capped is set when the result had to be cut to MaxHeaderLength.
	Capped bool
	Result string
}

// AbbreviateHeader returns a label of at most MaxHeaderLength characters
// for header. A header without any word yields "".
func AbbreviateHeader(header string) string {
	return ExplainHeader(header).Result
}

// ExplainHeader abbreviates header and reports every intermediate step.
func ExplainHeader(header string) HeaderTrace {
	trace := HeaderTrace{Header: header}

	trace.Tokens = TokenizeHeader(header)
	if common.IsEmpty(trace.Tokens) {
		return trace
	}

	pieces := make([]string, len(trace.Tokens))
	trace.Words = make([]WordTrace, len(trace.Tokens))

	for i, tok := range trace.Tokens {
		trace.Words[i] = ExplainWord(tok)
		pieces[i] = trace.Words[i].Result
	}

	trace.Joined = strings.Join(pieces, "")
	result := trace.Joined

	if !common.IsSingle(pieces) && utf8.RuneCountInString(result) > MaxHeaderLength {
		trace.Initials = true
		result = initials(pieces)
	}

	if utf8.RuneCountInString(result) > MaxHeaderLength {
		trace.Capped = true
		result = truncate(result, MaxHeaderLength)
	}

	trace.Result = result

	return trace
}

// initials joins the first character of every piece but the last with the
// last piece in full.
func initials(pieces []string) string {
	var b strings.Builder

	for _, p := range pieces[:len(pieces)-1] {
		r, _ := utf8.DecodeRuneInString(p)
		b.WriteRune(r)
	}

	last, _ := common.Last(pieces)
	b.WriteString(last)

	return b.String()
}
