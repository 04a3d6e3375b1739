package dto

// CreditSummary aggregates credits across the user's declared degrees
type CreditSummary struct {
	Completed int `json:"completed" example:"105"`
	Required  int `json:"required" example:"150"`
	Remaining int `json:"remaining" example:"45"`
}

// ClassSummary is the 3-credit class equivalent of a CreditSummary
type ClassSummary struct {
	Completed int `json:"completed" example:"35"`
	Required  int `json:"required" example:"50"`
	Remaining int `json:"remaining" example:"15"`
}

// OverviewResponse feeds the dashboard: identity, declared degrees and the
// aggregate credit/class counters shown in the progress ring.
type OverviewResponse struct {
	UserID             int64            `json:"userId" example:"95281937"`
	Name               string           `json:"name" example:"Angela Wright"`
	CGPA               *float64         `json:"cgpa"`
	PrimaryDegree      DegreeSummary    `json:"primaryDegree"`
	AdditionalDegree   *DegreeSummary   `json:"additionalDegree,omitempty"`
	Credits            CreditSummary    `json:"credits"`
	Classes            ClassSummary     `json:"classes"`
	RecommendedCourses []CourseResponse `json:"recommendedCourses"`
}

// SectionProgress counts one requirement section (required or electives of a
// degree or concentration). completed + remaining == total always holds.
type SectionProgress struct {
	CompletedClasses int `json:"completedClasses" example:"15"`
	RemainingClasses int `json:"remainingClasses" example:"5"`
	TotalClasses     int `json:"totalClasses" example:"20"`
	CompletedCredits int `json:"completedCredits" example:"45"`
	RemainingCredits int `json:"remainingCredits" example:"15"`
	TotalCredits     int `json:"totalCredits" example:"60"`
}

// RequirementSection is one collapsible section of the remaining-courses
// view: its progress counters plus the not-yet-completed courses, resolved.
type RequirementSection struct {
	Title            string           `json:"title" example:"Required Courses"`
	Progress         SectionProgress  `json:"progress"`
	RemainingCourses []CourseResponse `json:"remainingCourses"`
}

// DegreeProgressBlock is the full breakdown for one declared degree,
// including the nested concentration block when the degree declares one.
type DegreeProgressBlock struct {
	Name          string               `json:"name" example:"Data Science"`
	Type          string               `json:"type,omitempty" example:"Major"`
	Required      RequirementSection   `json:"required"`
	Electives     RequirementSection   `json:"electives"`
	Concentration *DegreeProgressBlock `json:"concentration,omitempty"`
}

// DegreeProgressResponse is the remaining-courses page payload
type DegreeProgressResponse struct {
	Degrees []DegreeProgressBlock `json:"degrees"`
	Credits CreditSummary         `json:"credits"`
	Classes ClassSummary          `json:"classes"`
}
