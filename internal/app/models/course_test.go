package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"lowercase unchanged", "cs101", "cs101"},
		{"uppercase folded", "CS101", "cs101"},
		{"mixed case folded", "Cs101", "cs101"},
		{"surrounding whitespace stripped", "  CS101  ", "cs101"},
		{"empty stays empty", "", ""},
		{"interior whitespace kept", "CS 101", "cs 101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCode(tt.code))
		})
	}
}

func TestCategoryForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"CS101", CategoryComputerScience},
		{"cs101", CategoryComputerScience},
		{"SE301", CategorySoftwareEngineering},
		{"DS202", CategoryDataScience},
		{"MATH110", CategoryMathematics},
		{"ENG103", CategoryEnglish},
		{"ML405", CategoryMachineLearning},
		{"PHYS101", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryForCode(tt.code))
		})
	}
}

func TestCourseHasPrerequisites(t *testing.T) {
	none := Course{Code: "CS101"}
	assert.False(t, none.HasPrerequisites())

	empty := Course{Code: "CS101", Prerequisites: []string{}}
	assert.False(t, empty.HasPrerequisites())

	some := Course{Code: "CS201", Prerequisites: []string{"CS101"}}
	assert.True(t, some.HasPrerequisites())
}

func TestUserCompletedCodeSet(t *testing.T) {
	user := User{
		Data: UserData{
			CompletedCourses: []CompletedCourse{
				{Code: "CS101"},
				{Code: "se102"},
			},
		},
	}

	set := user.CompletedCodeSet()
	assert.Len(t, set, 2)
	assert.Contains(t, set, "cs101")
	assert.Contains(t, set, "se102")
	assert.NotContains(t, set, "CS101")
}

func TestUserDegrees(t *testing.T) {
	user := User{
		Data: UserData{
			PrimaryDegree: Degree{Name: "Computer Science"},
		},
	}
	assert.Len(t, user.Degrees(), 1)

	user.Data.AdditionalDegree = &Degree{Type: DegreeTypeMinor, Name: "Mathematics"}
	degrees := user.Degrees()
	assert.Len(t, degrees, 2)
	assert.Equal(t, "Computer Science", degrees[0].Name)
	assert.Equal(t, "Mathematics", degrees[1].Name)
}
