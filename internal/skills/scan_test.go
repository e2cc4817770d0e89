package skills

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestScan_DefaultLexicon(t *testing.T) {
	found := Scan("Worked with Docker and Kubernetes, plus some SQL.", nil)
	assert.Equal(t, []string{"SQL", "Docker", "Kubernetes"}, found)
}

func TestScan_CaseInsensitiveKeepsLexiconCasing(t *testing.T) {
	found := Scan("c# developer using asp.net core", lexicon.Default())

	assert.Contains(t, found, "C#")
	assert.Contains(t, found, "ASP.NET Core")
	assert.Contains(t, found, ".NET")
	assert.NotContains(t, found, "c#")
}

func TestScan_LexiconOrder(t *testing.T) {
	lex := &lexicon.Lexicon{Skills: []string{"Zig", "Ada", "Lua"}}
	found := Scan("lua, ada and zig", lex)
	assert.Equal(t, []string{"Zig", "Ada", "Lua"}, found)
}

func TestScan_DeduplicatesCaseInsensitively(t *testing.T) {
	lex := &lexicon.Lexicon{Skills: []string{"Go", "GO", "go"}}
	assert.Equal(t, []string{"Go"}, Scan("I write go", lex))
}

func TestScan_CapsResults(t *testing.T) {
	var keywords []string
	for i := 0; i < 30; i++ {
		keywords = append(keywords, fmt.Sprintf("tool%02d", i))
	}
	lex := &lexicon.Lexicon{Skills: keywords}

	found := Scan(strings.Join(keywords, " "), lex)
	assert.Len(t, found, MaxScanResults)
	assert.Equal(t, "tool00", found[0])
	assert.Equal(t, "tool19", found[MaxScanResults-1])
}

func TestScan_NoMatches(t *testing.T) {
	assert.Empty(t, Scan("Gardening and cooking", nil))
	assert.Empty(t, Scan("", nil))
	assert.Empty(t, Scan("   ", nil))
}
