package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Metadata describes an ingested résumé. Hash identifies the text, not the
// file, so re-uploads under another name share it.
type Metadata struct {
	FileName   string    `json:"file_name"`
	Hash       string    `json:"hash"`
	Chars      int       `json:"chars"`
	Lines      int       `json:"lines"`
	IngestedAt time.Time `json:"ingested_at"`
}

// NewMetadata describes content as read from fileName
func NewMetadata(content string, fileName string) *Metadata {
	sum := sha256.Sum256([]byte(content))
	lines := 0
	if content != "" {
		lines = strings.Count(content, "\n") + 1
	}
	return &Metadata{
		FileName:   fileName,
		Hash:       hex.EncodeToString(sum[:]),
		Chars:      len([]rune(content)),
		Lines:      lines,
		IngestedAt: time.Now().UTC(),
	}
}
