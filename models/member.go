package models

// MemberRole represents the role of a member within an organization
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
	MemberRoleViewer MemberRole = "viewer"
)

// MemberStatus represents the status of a member
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Member represents a person belonging to an organization. OrganizationID is
// a validated reference: create and update fail with a validation error when
// it does not resolve to an existing organization.
type Member struct {
	ID             string       `json:"id" dynamodbav:"id"`
	Name           string       `json:"name" dynamodbav:"name" validate:"required,min=2,max=100"`
	Email          string       `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Phone          string       `json:"phone,omitempty" dynamodbav:"phone,omitempty" validate:"omitempty,max=30"`
	Role           MemberRole   `json:"role" dynamodbav:"role" validate:"omitempty,oneof=admin member viewer"`
	OrganizationID string       `json:"organizationId" dynamodbav:"organization_id" validate:"required"`
	Organization   string       `json:"organization,omitempty" dynamodbav:"organization,omitempty"` // resolved name, server-filled
	Status         MemberStatus `json:"status" dynamodbav:"status" validate:"omitempty,oneof=active inactive"`
	JoinedDate     string       `json:"joinedDate" dynamodbav:"joined_date"` // YYYY-MM-DD, server-assigned
	LastActive     string       `json:"lastActive,omitempty" dynamodbav:"last_active,omitempty"`
}

// MemberPatch carries a partial update; nil fields are preserved.
type MemberPatch struct {
	Name           *string       `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email          *string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string       `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role           *MemberRole   `json:"role,omitempty" validate:"omitempty,oneof=admin member viewer"`
	OrganizationID *string       `json:"organizationId,omitempty"`
	Organization   *string       `json:"-"` // resolved name, set by the service alongside OrganizationID
	Status         *MemberStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	LastActive     *string       `json:"lastActive,omitempty"`
}
