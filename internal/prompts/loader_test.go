package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		key      string
		wantErr  string
		contains string
	}{
		{name: "extraction prompt", file: "extraction.json", key: "extract-candidate", contains: "Extract structured data"},
		{name: "missing file", file: "nonexistent.json", key: "x", wantErr: "failed to read prompt file"},
		{name: "missing key", file: "extraction.json", key: "nonexistent-key", wantErr: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := Get(tt.file, tt.key)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, prompt, tt.contains)
		})
	}
}

func TestMustGet(t *testing.T) {
	assert.Panics(t, func() { MustGet("nonexistent.json", "x") })
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet("extraction.json", "extract-candidate"))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{
			name:     "all placeholders",
			template: "Hello {{.Name}}, welcome to {{.Company}}!",
			data:     map[string]string{"Name": "Alice", "Company": "Acme Corp"},
			want:     "Hello Alice, welcome to Acme Corp!",
		},
		{
			name:     "no placeholders",
			template: "No placeholders here",
			data:     map[string]string{"Key": "Value"},
			want:     "No placeholders here",
		},
		{
			name:     "missing value keeps placeholder",
			template: "Hello {{.Name}}",
			data:     map[string]string{},
			want:     "Hello {{.Name}}",
		},
		{
			name:     "values are not expanded again",
			template: "{{.A}} and {{.B}}",
			data:     map[string]string{"A": "{{.B}}", "B": "b"},
			want:     "{{.B}} and b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, Placeholders("{{.A}} {{.B}} {{.A}} {{ .C }}"))
	assert.Nil(t, Placeholders("plain"))
}

func TestExtractCandidatePrompt(t *testing.T) {
	prompt := MustGet("extraction.json", "extract-candidate")
	assert.Equal(t, []string{"TargetRole", "CVText"}, Placeholders(prompt))

	formatted := Format(prompt, map[string]string{
		"TargetRole": ".NET developer",
		"CVText":     "Jane Doe\nC# 5 years",
	})
	assert.Contains(t, formatted, "Target role: .NET developer")
	assert.Contains(t, formatted, "---BEGIN---\nJane Doe\nC# 5 years\n---END---")
	assert.Empty(t, Placeholders(formatted))
}
