package constants

// Role names as stored in users.user_role and carried in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Guard sets for route groups.
var (
	AdminOnly       = []string{RoleAdmin}
	TeacherAndAbove = []string{RoleTeacher, RoleAdmin}
	StudentOnly     = []string{RoleStudent}
	AllRoles        = []string{RoleStudent, RoleTeacher, RoleAdmin}
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
