package models

import "github.com/golang-jwt/jwt/v5"

// Admin is a console account: either the platform superadmin or an
// organization admin. It backs both the credential directory consulted at
// login and the /profile resource. The password hash never leaves the server.
type Admin struct {
	ID             string `json:"id" dynamodbav:"id"`
	Name           string `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" dynamodbav:"email" validate:"required,email"`
	Role           string `json:"role" dynamodbav:"role"` // "superadmin" or "orgadmin"
	OrganizationID string `json:"orgId,omitempty" dynamodbav:"organization_id,omitempty"`
	PasswordHash   string `json:"-" dynamodbav:"password_hash"`
}

// AdminPatch carries a partial profile update; nil fields are preserved
type AdminPatch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// LoginRequest is the POST /auth/login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token   string `json:"token"`
	ID      string `json:"id"`
	OrgID   string `json:"orgId,omitempty"`
	OrgName string `json:"orgName,omitempty"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// ChangePasswordRequest is the POST /auth/change-password body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// JWTClaims extends standard JWT claims with console account information
type JWTClaims struct {
	AdminID        string `json:"admin_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	jwt.RegisteredClaims
}
