package models

import "strings"

// Course is a catalog entry. The catalog is loaded once at startup and never
// mutated, so Course values are shared freely.
type Course struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// HasPrerequisites reports whether the course declares any prerequisites.
// A nil and an empty list mean the same thing: none.
func (c *Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// NormalizeCode canonicalizes a course code for comparison: surrounding
// whitespace is stripped and the code is lower-cased. Every code lookup and
// set-membership check in the application goes through this form.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Display categories derived from course code prefixes.
const (
	CategoryComputerScience     = "Computer Science"
	CategorySoftwareEngineering = "Software Engineering"
	CategoryDataScience         = "Data Science"
	CategoryMathematics         = "Mathematics"
	CategoryEnglish             = "English"
	CategoryMachineLearning     = "Machine Learning"
	CategoryOther               = "Other"
)

// categoryPrefixes is ordered; the first matching prefix wins.
var categoryPrefixes = []struct {
	prefix   string
	category string
}{
	{"CS", CategoryComputerScience},
	{"SE", CategorySoftwareEngineering},
	{"DS", CategoryDataScience},
	{"MATH", CategoryMathematics},
	{"ENG", CategoryEnglish},
	{"ML", CategoryMachineLearning},
}

// CategoryForCode maps a course code to its display category by testing the
// code prefix against the known subject prefixes.
func CategoryForCode(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(upper, p.prefix) {
			return p.category
		}
	}
	return CategoryOther
}

// Category returns the display category of the course.
func (c *Course) Category() string {
	return CategoryForCode(c.Code)
}
