package models

// OrganizationStatus represents the status of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive   OrganizationStatus = "active"
	OrganizationStatusInactive OrganizationStatus = "inactive"
)

// Organization represents a tenant organization managed through the console.
// ID and Created are server-assigned: ID is immutable after creation and
// Created is set once, never mutated.
type Organization struct {
	ID          string             `json:"id" dynamodbav:"id"`
	Name        string             `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Email       string             `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone       string             `json:"phone,omitempty" dynamodbav:"phone,omitempty" validate:"omitempty,max=30"`
	Address     string             `json:"address,omitempty" dynamodbav:"address,omitempty" validate:"omitempty,max=200"`
	Description string             `json:"description,omitempty" dynamodbav:"description,omitempty" validate:"omitempty,max=500"`
	Status      OrganizationStatus `json:"status" dynamodbav:"status" validate:"omitempty,oneof=active inactive"`
	Members     int                `json:"members" dynamodbav:"members" validate:"omitempty,min=0"`
	Messages    int                `json:"messages" dynamodbav:"messages" validate:"omitempty,min=0"`
	Created     string             `json:"created" dynamodbav:"created"` // YYYY-MM-DD
}

// OrganizationPatch carries a partial update. Nil fields are left untouched
// by the repository merge; ID and Created cannot be patched.
type OrganizationPatch struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email       *string             `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string             `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     *string             `json:"address,omitempty" validate:"omitempty,max=200"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *OrganizationStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Members     *int                `json:"members,omitempty" validate:"omitempty,min=0"`
	Messages    *int                `json:"messages,omitempty" validate:"omitempty,min=0"`
}
