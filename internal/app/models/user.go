package models

// CompletedCourse is one entry of a user's transcript. Term is free text in
// the form "<Season> <Year>"; the trailing token is parsed as the sort year.
type CompletedCourse struct {
	Code       string `json:"code"`
	Term       string `json:"term"`
	Grade      string `json:"grade"`
	Instructor string `json:"instructor"`
}

// UserData holds the academic record attached to a user account. It is set
// up with the account and read-only during a session.
type UserData struct {
	PrimaryDegree      Degree            `json:"primaryDegree"`
	AdditionalDegree   *Degree           `json:"additionalDegree,omitempty"`
	CompletedCourses   []CompletedCourse `json:"completedCourses,omitempty"`
	RecommendedCourses []string          `json:"recommendedCourses,omitempty"`
}

// User is a student account. Password carries the plaintext credential only
// while the dataset is being loaded; the store replaces it with a bcrypt hash
// before the record becomes reachable.
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	CGPA     *float64 `json:"cgpa"`
	Data     UserData `json:"data"`
}

// CompletedCodeSet returns the user's completed course codes as a normalized
// membership set.
func (u *User) CompletedCodeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(u.Data.CompletedCourses))
	for _, cc := range u.Data.CompletedCourses {
		set[NormalizeCode(cc.Code)] = struct{}{}
	}
	return set
}

// Degrees returns the user's declared degrees in order, primary first. The
// additional degree is included only when present.
func (u *User) Degrees() []Degree {
	degrees := []Degree{u.Data.PrimaryDegree}
	if u.Data.AdditionalDegree != nil {
		degrees = append(degrees, *u.Data.AdditionalDegree)
	}
	return degrees
}
