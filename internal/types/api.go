//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest is the request body for the analyze and score API endpoints.
type AnalyzeRequest struct {
	CV      *CVData     `json:"cv" validate:"required"`
	Posting *JobPosting `json:"posting" validate:"required"`
}

// LoginRequest is the request body for the optional login endpoint.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
