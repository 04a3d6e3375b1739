package repositories

// Repositories acts as a container for all repositories. The stores are
// populated once from the embedded dataset at startup and are read-only
// afterwards, so they are safe for concurrent use by request handlers.
type Repositories struct {
	CourseRepository      *CourseRepository
	RequirementRepository *RequirementRepository
	UserRepository        *UserRepository
}

// NewRepositories creates a container with all application repositories
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(),
		RequirementRepository: NewRequirementRepository(),
		UserRepository:        NewUserRepository(),
	}
}
