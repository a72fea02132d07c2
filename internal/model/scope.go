package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated identity of a request.
// Set by the auth middleware and passed to every use case method.
type Scope struct {
	UserID      string
	WorkspaceID string
	Role        string // viewer, editor, admin, owner
}
