package parsing

import (
	"bytes"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/brianmarti1994/AI-Skill-Graph/internal/types"
)

// Field aliases accepted from model output, in priority order.
var (
	skillNameKeys  = []string{"name", "skill", "skillName", "technology"}
	skillYearsKeys = []string{"years", "yrs", "experienceYears"}
	startKeys      = []string{"start", "startDate"}
	endKeys        = []string{"end", "endDate"}
)

// document is the loosely typed shape of a model response. Scalar fields stay raw and
// are read leniently: a value of the wrong JSON type falls back to the field default.
type document struct {
	FullName             json.RawMessage
	Email                json.RawMessage
	Phone                json.RawMessage
	Location             json.RawMessage
	GithubURL            json.RawMessage
	LinkedInURL          json.RawMessage
	TotalYearsExperience json.RawMessage
	Skills               skillList
	Employment           employmentList
}

// decodeDocument parses recovered model output. Only text that is not a JSON object fails.
// Keys are matched exactly; "FullName" or "SKILLS" are not read.
func decodeDocument(jsonText string) (*document, error) {
	trimmed := strings.TrimSpace(jsonText)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, newParseError("response does not contain a JSON object", trimmed, nil)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, newParseError("failed to parse JSON response", trimmed, err)
	}

	doc := &document{
		FullName:             fields["fullName"],
		Email:                fields["email"],
		Phone:                fields["phone"],
		Location:             fields["location"],
		GithubURL:            fields["githubUrl"],
		LinkedInURL:          fields["linkedInUrl"],
		TotalYearsExperience: fields["totalYearsExperience"],
	}
	if raw, ok := fields["skills"]; ok {
		_ = doc.Skills.UnmarshalJSON(raw)
	}
	if raw, ok := fields["employment"]; ok {
		_ = doc.Employment.UnmarshalJSON(raw)
	}
	return doc, nil
}

// skillShape records which layout the model used for the skills array.
type skillShape int

const (
	skillsAbsent skillShape = iota
	skillsStrings
	skillsObjects
	skillsMixed
)

func (s skillShape) String() string {
	switch s {
	case skillsStrings:
		return "strings"
	case skillsObjects:
		return "objects"
	case skillsMixed:
		return "mixed"
	default:
		return "absent"
	}
}

// skillList decodes the skills field in any of its accepted shapes. It never fails:
// anything other than an array is treated as absent and unusable elements are skipped.
type skillList struct {
	shape skillShape
	items []types.Skill
}

func (l *skillList) UnmarshalJSON(data []byte) error {
	*l = skillList{}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil || elems == nil {
		return nil
	}

	var sawString, sawObject bool
	for _, elem := range elems {
		switch firstByte(elem) {
		case '"':
			sawString = true
			if name, ok := stringValue(elem); ok && strings.TrimSpace(name) != "" {
				l.items = append(l.items, types.Skill{Name: strings.TrimSpace(name), Years: types.DefaultSkillYears})
			}
		case '{':
			sawObject = true
			if skill, ok := decodeSkillObject(elem); ok {
				l.items = append(l.items, skill)
			}
		}
	}

	switch {
	case sawString && sawObject:
		l.shape = skillsMixed
	case sawObject:
		l.shape = skillsObjects
	case sawString:
		l.shape = skillsStrings
	}
	return nil
}

func decodeSkillObject(data json.RawMessage) (types.Skill, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return types.Skill{}, false
	}

	name := firstString(fields, skillNameKeys)
	if name == "" {
		return types.Skill{}, false
	}

	years := types.DefaultSkillYears
	for _, key := range skillYearsKeys {
		if v, ok := yearsValue(fields[key]); ok {
			years = v
			break
		}
	}
	return types.Skill{Name: name, Years: clampYears(years)}, true
}

// employmentList decodes the employment array, dropping records without company and title.
type employmentList []types.EmploymentRecord

func (l *employmentList) UnmarshalJSON(data []byte) error {
	*l = nil

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}

	for _, elem := range elems {
		if firstByte(elem) != '{' {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			continue
		}

		company, _ := stringValue(fields["company"])
		title, _ := stringValue(fields["title"])
		if strings.TrimSpace(company) == "" && strings.TrimSpace(title) == "" {
			continue
		}
		summary, _ := stringValue(fields["summary"])

		*l = append(*l, types.EmploymentRecord{
			Company: company,
			Title:   title,
			Start:   optionalString(firstString(fields, startKeys)),
			End:     optionalString(firstString(fields, endKeys)),
			Summary: summary,
		})
	}
	return nil
}

// firstByte returns the first non-space byte of a raw JSON value, or 0.
func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// stringValue reads raw only when it is a JSON string.
func stringValue(raw json.RawMessage) (string, bool) {
	if firstByte(raw) != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// firstString returns the trimmed value of the first key holding a non-blank string.
func firstString(fields map[string]json.RawMessage, keys []string) string {
	for _, key := range keys {
		if s, ok := stringValue(fields[key]); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// absoluteURL keeps a string field only when it parses as an absolute URL with a host.
func absoluteURL(raw json.RawMessage) *string {
	s, ok := stringValue(raw)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return &s
}

// yearsValue reads a years figure from a JSON number or from a string such as "3+",
// "5 yrs" or "1,5". Values that cannot be read report false.
func yearsValue(raw json.RawMessage) (float64, bool) {
	switch c := firstByte(raw); {
	case c == '"':
		s, _ := stringValue(raw)
		cleaned := strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9', r == '.':
				return r
			case r == ',':
				return '.'
			default:
				return -1
			}
		}, s)
		if cleaned == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case c == '-' || (c >= '0' && c <= '9'):
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// clampYears maps negative values to the unknown default and caps at types.MaxYears.
func clampYears(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return types.DefaultSkillYears
	}
	if v > types.MaxYears {
		return types.MaxYears
	}
	return v
}

// totalYears reads totalYearsExperience: integers as is, other numbers rounded half to even,
// strings only when they hold an integer. Anything else is 0.
func totalYears(raw json.RawMessage) int {
	switch c := firstByte(raw); {
	case c == '"':
		s, _ := stringValue(raw)
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		return n
	case c == '-' || (c >= '0' && c <= '9'):
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0
		}
		v = math.RoundToEven(v)
		if v > types.MaxYears {
			return types.MaxYears
		}
		if v < 0 {
			return 0
		}
		return int(v)
	default:
		return 0
	}
}
