package content

// Service is one line of work the business advertises.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Profile is the static business profile the marketing site renders and the
// quote form draws its job-type options from.
type Profile struct {
	Name        string    `json:"name"`
	Tagline     string    `json:"tagline"`
	ServiceArea string    `json:"serviceArea"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	JobTypes    []string  `json:"jobTypes"`
	Services    []Service `json:"services"`
	BestFitJobs []string  `json:"bestFitJobs"`
	NotAFitJobs []string  `json:"notAFitJobs"`
}

// DefaultProfile returns the Q2 Exteriors profile.
func DefaultProfile() Profile {
	return Profile{
		Name:        "Quick & Qualified Exteriors",
		Tagline:     "Roofing • Eavestrough • Repairs",
		ServiceArea: "Georgina, Ontario + surrounding area",
		Email:       "quinnytrott@gmail.com",
		JobTypes: []string{
			"Roof Repairs",
			"Small Roof Replacements",
			"Eavestrough Replacement & Repairs",
			"Soffit / Fascia Repairs",
			"Leak Diagnostics & Prevention",
			"Other",
		},
		Services: []Service{
			{
				Title:       "Roof Repairs",
				Description: "Targeted roof repairs to stop leaks and protect your home without overselling full replacements.",
			},
			{
				Title:       "Small Roof Replacements",
				Description: "Ideal for garages, sheds, and smaller roof sections that need quality workmanship done efficiently.",
			},
			{
				Title:       "Eavestrough Replacement & Repairs",
				Description: "Repairing or replacing eavestrough systems to improve drainage and reduce water-related damage.",
			},
			{
				Title:       "Soffit / Fascia Repairs",
				Description: "Clean, durable soffit and fascia repairs that restore airflow, function, and curb appeal.",
			},
			{
				Title:       "Leak Diagnostics & Prevention",
				Description: "Photo-guided diagnostics and practical prevention to resolve the root cause before it gets worse.",
			},
		},
		BestFitJobs: []string{
			"Roof leak and shingle repair calls",
			"Garages, sheds, and small roof sections",
			"Eavestrough and exterior trim repairs",
		},
		NotAFitJobs: []string{
			"Commercial projects",
			"Multi-crew production jobs",
			"Low-margin bidding projects",
		},
	}
}
