package models

// OrgSettings is the org console settings page payload. It is a projection of
// the organization's contact fields, not an independently stored entity.
type OrgSettings struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address string `json:"address,omitempty" validate:"omitempty,max=200"`
}
