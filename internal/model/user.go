package model

// UserRole 用户角色，写在 JWT claims 中
type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)
