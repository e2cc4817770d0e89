package skills

import (
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

// Reconcile trims skill names, drops empty ones and collapses case-insensitive
// duplicates into the entry with the maximum years, spelling included. The group
// stays at the position of its first occurrence; on a tie the earlier entry wins.
func Reconcile(skills []types.Skill) []types.Skill {
	index := make(map[string]int, len(skills))
	out := make([]types.Skill, 0, len(skills))

	for _, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if i, exists := index[key]; exists {
			if s.Years > out[i].Years {
				out[i] = types.Skill{Name: name, Years: s.Years}
			}
			continue
		}
		index[key] = len(out)
		out = append(out, types.Skill{Name: name, Years: s.Years})
	}
	return out
}

// Merge appends every detected keyword not already present (case-insensitive)
// at types.DefaultSkillYears, then reconciles the result. With no extracted
// skills the detected keywords become the whole list.
func Merge(extracted []types.Skill, detected []string) []types.Skill {
	present := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		present[strings.ToLower(strings.TrimSpace(s.Name))] = true
	}

	merged := make([]types.Skill, 0, len(extracted)+len(detected))
	merged = append(merged, extracted...)
	for _, keyword := range detected {
		key := strings.ToLower(strings.TrimSpace(keyword))
		if key == "" || present[key] {
			continue
		}
		present[key] = true
		merged = append(merged, types.Skill{Name: keyword, Years: types.DefaultSkillYears})
	}
	return Reconcile(merged)
}
