package models

// DegreeType classifies a degree or requirement block.
type DegreeType string

const (
	DegreeTypeMajor         DegreeType = "Major"
	DegreeTypeMinor         DegreeType = "Minor"
	DegreeTypeConcentration DegreeType = "Concentration"
)

// DegreeRequirement lists the course codes that make up a degree or
// concentration, split into required and elective sections. Requirements are
// keyed by degree name in the catalog and are immutable after load.
type DegreeRequirement struct {
	Name      string     `json:"name"`
	Type      DegreeType `json:"type"`
	Required  []string   `json:"required"`
	Electives []string   `json:"electives"`
}

// Degree is a user's declared degree. Name joins into the requirement set;
// Concentration, when set, names another DegreeRequirement.
type Degree struct {
	Type             DegreeType `json:"type,omitempty"`
	Name             string     `json:"name"`
	Concentration    string     `json:"concentration,omitempty"`
	CreditsCompleted int        `json:"creditsCompleted"`
	CreditsRequired  int        `json:"creditsRequired"`
}
