package constants

import "strings"

// Roles an Admin account can hold. A nil role means the account was created
// by Google sign-in and has not been promoted yet.
const (
	RoleFaculty = "faculty"
	RoleStaff   = "staff"
)

// FacultyCodes maps the short program codes used in the CSV upload format to
// the fixed faculty IDs seeded at startup.
var FacultyCodes = map[string]int{
	"BSBC": 1,
	"BSCS": 2,
	"BSAP": 3,
}

// FacultyNames drives the seeder; index+1 is the faculty_id.
var FacultyNames = []string{
	"BS Biochemistry",
	"BS Computer Science",
	"BS Applied Physics",
}

// FacultyIDFromCode resolves a program code (case-insensitive) to its faculty ID.
func FacultyIDFromCode(code string) (int, bool) {
	id, ok := FacultyCodes[strings.ToUpper(strings.TrimSpace(code))]
	return id, ok
}
