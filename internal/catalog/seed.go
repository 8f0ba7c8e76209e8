package catalog

import "example.com/signup/internal/domain"

// seedActivities returns the school's activity roster as it stands at the
// start of the term. Each call builds fresh slices so installed rosters never
// alias a previous catalog generation.
func seedActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Join the varsity basketball team and compete in league games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "lucas@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Training sessions and swimming competitions",
			Schedule:        "Mondays and Wednesdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"charlotte@mergington.edu", "amelia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"harper@mergington.edu", "evelyn@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking skills through competitive debates",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"benjamin@mergington.edu", "william@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science competitions and conduct research projects",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu", "abigail@mergington.edu"},
		},
	}
}
