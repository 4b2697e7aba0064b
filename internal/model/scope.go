package model

// Scope carries the identity of the caller, taken from the X-Sharer-User-Id header.
type Scope struct {
	UserID int64
}

// Environment names used to switch behaviour between deployments.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// SharerUserIDHeader identifies the caller on every authenticated request.
const SharerUserIDHeader = "X-Sharer-User-Id"
