package entity

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleCoach UserRole = "COACH"
)

type User struct {
	Base
	Name  string   `db:"name"`
	Email string   `db:"email"`
	Role  UserRole `db:"role"`
}
