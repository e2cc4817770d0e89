package ingestion

import "fmt"

// UnsupportedInputError reports an upload that cannot be read as résumé text
type UnsupportedInputError struct {
	FileName string
	Message  string
	// UnsupportedType is set when the file format itself cannot be read
	UnsupportedType bool
}

func (e *UnsupportedInputError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("unsupported input %s: %s", e.FileName, e.Message)
	}
	return fmt.Sprintf("unsupported input: %s", e.Message)
}
