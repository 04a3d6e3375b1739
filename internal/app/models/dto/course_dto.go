package dto

// PrerequisiteStatus is one prerequisite chip on a course: the resolved
// display name and whether the current student has completed it. Name falls
// back to the raw code when the catalog has no matching entry.
type PrerequisiteStatus struct {
	Code      string `json:"code" example:"CS101"`
	Name      string `json:"name" example:"Introduction to Programming"`
	Completed bool   `json:"completed"`
}

// CourseResponse represents a resolved catalog course
type CourseResponse struct {
	Code          string               `json:"code" example:"CS201"`
	Name          string               `json:"name" example:"Advanced Programming"`
	Description   string               `json:"description"`
	Category      string               `json:"category" example:"Computer Science"`
	Prerequisites []PrerequisiteStatus `json:"prerequisites"`
}

// CourseListResponse is a paginated catalog view
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Categories []string         `json:"categories"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CompletedCourseResponse is one row of the completed courses table
type CompletedCourseResponse struct {
	Code       string `json:"code" example:"CS101"`
	Name       string `json:"name" example:"Introduction to Programming"`
	Grade      string `json:"grade" example:"A-"`
	Instructor string `json:"instructor" example:"Emma Towlson"`
	Term       string `json:"term" example:"Fall 2019"`
}

// CompletedCourseListResponse is the paginated completed courses view
type CompletedCourseListResponse struct {
	Courses    []CompletedCourseResponse `json:"courses"`
	Pagination PaginationInfo            `json:"pagination"`
}
