package seeder

// Defaults seeds one demo recruiter and a handful of jobs posted by them.
// Both seeders are idempotent.
func Defaults() []Seeder {
	return []Seeder{
		RecruiterSeeder{},
		JobsSeeder{},
	}
}
