// Package constants holds shared context keys and environment names.
package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"
)

// Known role values carried in token claims.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
