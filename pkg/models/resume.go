package models

// SkillLevel represents the self-assessed proficiency of a skill
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelExpert       SkillLevel = "Expert"
)

// WorkExperience represents one position in the experience section.
// Description holds the bullet lines joined with newlines; renderers split
// it back into one bullet per non-empty line.
type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education represents one education entry
type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationDate string `json:"graduationDate"`
}

// Skill represents one skill badge
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Project represents one project entry. Link is optional.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// ResumeRecord is the canonical resume state for one editing session.
// Every field is optional-by-emptiness: nothing is required to render.
// The record is mutated only by whole-value replacement, so a copy handed
// out to a renderer is never observed half-updated.
type ResumeRecord struct {
	FullName   string           `json:"fullName"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Location   string           `json:"location"`
	Website    string           `json:"website"`
	LinkedIn   string           `json:"linkedin"`
	Summary    string           `json:"summary"`
	Experience []WorkExperience `json:"experience"`
	Education  []Education      `json:"education"`
	Skills     []Skill          `json:"skills"`
	Projects   []Project        `json:"projects"`
}

// Clone returns a deep copy of the record. List headers are always
// reallocated so callers can never alias the session's backing slices.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Experience = append([]WorkExperience(nil), r.Experience...)
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Projects = append([]Project(nil), r.Projects...)
	return out
}

// ATSAnalysis is the result of matching a resume against a job description.
// It is produced fresh per analysis request and never merged into the record.
type ATSAnalysis struct {
	Score           float64  `json:"score"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// DefaultResume returns the built-in starter record used when no snapshot
// exists for a session, or when a stored snapshot fails to decode.
func DefaultResume() ResumeRecord {
	return ResumeRecord{
		FullName: "Alex Morgan",
		Email:    "alex.morgan@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Website:  "alexmorgan.dev",
		LinkedIn: "linkedin.com/in/alexmorgan",
		Summary: "Results-driven Software Engineer with 5+ years of experience in full-stack development. " +
			"Proven track record of improving system performance and leading cross-functional teams.",
		Experience: []WorkExperience{
			{
				ID:        "1",
				Company:   "Tech Solutions Inc.",
				Position:  "Senior Developer",
				StartDate: "2021",
				EndDate:   "Present",
				Current:   true,
				Description: "Led a team of 5 engineers to migrate legacy monolith to microservices.\n" +
					"Improved API response time by 40% through caching strategies.",
			},
		},
		Education: []Education{
			{
				ID:             "1",
				Institution:    "University of California",
				Degree:         "B.S. Computer Science",
				FieldOfStudy:   "Computer Science",
				GraduationDate: "2018",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "React", Level: SkillLevelExpert},
			{ID: "2", Name: "TypeScript", Level: SkillLevelExpert},
			{ID: "3", Name: "Node.js", Level: SkillLevelIntermediate},
		},
		Projects: []Project{},
	}
}
