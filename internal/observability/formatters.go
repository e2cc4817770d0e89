// Package observability provides formatted output for verbose CLI mode and
// structured logging of model responses.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of an extracted candidate.
func (p *Printer) PrintCandidate(c *types.Candidate) {
	if c == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", c.FullName))
	if c.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", c.Email))
	}
	if c.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", c.Location))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", c.TotalYearsExperience))
	if c.GithubURL != nil {
		sb.WriteString(fmt.Sprintf("GitHub:     %s\n", *c.GithubURL))
	}
	sb.WriteString("\n")

	if len(c.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(c.Skills)))
		count := min(len(c.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := c.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f y)\n", s.Name, s.Years))
		}
		if len(c.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(c.Employment) > 0 {
		sb.WriteString("Employment:\n")
		count := min(len(c.Employment), 3)
		for i := 0; i < count; i++ {
			e := c.Employment[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s (%s - %s)\n", e.Title, e.Company, deref(e.Start, "?"), deref(e.End, "present")))
		}
		if len(c.Employment) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.Employment)-3))
		}
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the match percentage and traffic light for a role.
func (p *Printer) PrintMatch(role string, result types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:  %s\n", role))
	sb.WriteString(fmt.Sprintf("Match: %.2f%%\n", result.Percentage))
	sb.WriteString(fmt.Sprintf("Light: %s %s", lightIcon(result.TrafficLight), result.TrafficLight))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintRepos outputs repositories with their dominant languages.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRepos(repos []types.RepoSummary) {
	if len(repos) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO PUBLIC REPOSITORIES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, r := range repos {
		sb.WriteString(fmt.Sprintf("%s\n", r.Name))
		if langs := topLanguages(r.Languages, 3); len(langs) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(langs, ", ")))
		}
		if i < len(repos)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("GITHUB REPOSITORIES (%d)", len(repos)), strings.TrimSuffix(sb.String(), "\n"))
}

// topLanguages returns up to n language names ordered by byte count, ties by name.
func topLanguages(langs map[string]int64, n int) []string {
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func lightIcon(light types.TrafficLight) string {
	switch light {
	case types.Green:
		return "🟢"
	case types.Red:
		return "🔴"
	default:
		return "🟡"
	}
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
