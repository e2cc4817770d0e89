package parsing

import "fmt"

// excerptLen caps how much of a bad model response a ParseError carries
const excerptLen = 120

// APICallError means the generation endpoint could not be reached or refused
// the request. Model is empty when the client reported no model for the tier.
type APICallError struct {
	Model   string
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	msg := "generation call failed"
	if e.Model != "" {
		msg += " (" + e.Model + ")"
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError means the model answered but no JSON object could be read from
// the answer. Excerpt holds the start of the offending text.
type ParseError struct {
	Message string
	Excerpt string
	Cause   error
}

func newParseError(message, text string, cause error) *ParseError {
	runes := []rune(text)
	if len(runes) > excerptLen {
		runes = runes[:excerptLen]
	}
	return &ParseError{Message: message, Excerpt: string(runes), Cause: cause}
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unparsable model response: %s: %v", e.Message, e.Cause)
	}
	return "unparsable model response: " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
