// Package ingestion turns uploaded résumé files into normalized plain text.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxResumeBytes bounds the size of an uploaded résumé
const MaxResumeBytes = 15 * 1024 * 1024

// supportedExtensions lists file types read as plain text
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

// ReadResume reads a résumé from r. fileName decides whether the format is supported;
// binary formats such as PDF or DOCX are rejected with an UnsupportedInputError.
func ReadResume(fileName string, r io.Reader) (string, *Metadata, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !supportedExtensions[ext] {
		return "", nil, &UnsupportedInputError{
			FileName:        fileName,
			Message:         fmt.Sprintf("unsupported file type %q, upload plain text", ext),
			UnsupportedType: true,
		}
	}

	content, err := io.ReadAll(io.LimitReader(r, MaxResumeBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read résumé: %w", err)
	}
	if len(content) > MaxResumeBytes {
		return "", nil, &UnsupportedInputError{FileName: fileName, Message: "file too large"}
	}
	if !utf8.Valid(content) {
		return "", nil, &UnsupportedInputError{FileName: fileName, Message: "file is not UTF-8 text"}
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		return "", nil, &UnsupportedInputError{FileName: fileName, Message: "empty file"}
	}

	return text, NewMetadata(text, fileName), nil
}

// IngestFromFile reads a résumé text file from disk
func IngestFromFile(path string) (string, *Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadResume(filepath.Base(path), f)
}
