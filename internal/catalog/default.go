package catalog

// Default returns the built-in backend-engineering curriculum used when no
// catalog file is configured.
func Default() *Catalog {
	return &Catalog{
		Name: "Backend Engineering Track",
		Weeks: []WeekSeed{
			{
				ID:    1,
				Title: "Week 1: Foundations",
				Courses: []CourseSeed{
					{ID: "env-setup", Name: "Environment Setup"},
					{ID: "git-basics", Name: "Version Control Basics"},
					{ID: "lang-tour", Name: "Language Tour"},
				},
			},
			{
				ID:    2,
				Title: "Week 2: Data & Persistence",
				Courses: []CourseSeed{
					{ID: "sql-intro", Name: "Relational Databases"},
					{ID: "schema-design", Name: "Schema Design"},
					{ID: "migrations", Name: "Migrations in Practice"},
				},
			},
			{
				ID:    3,
				Title: "Week 3: APIs",
				Courses: []CourseSeed{
					{ID: "http-fund", Name: "HTTP Fundamentals"},
					{ID: "rest-design", Name: "REST API Design"},
					{ID: "auth-basics", Name: "Authentication Basics"},
					{ID: "api-testing", Name: "API Testing"},
				},
			},
			{
				ID:    4,
				Title: "Week 4: Operations",
				Courses: []CourseSeed{
					{ID: "containers", Name: "Containers"},
					{ID: "ci-cd", Name: "CI/CD Pipelines"},
					{ID: "observability", Name: "Logging & Observability"},
				},
			},
		},
	}
}
