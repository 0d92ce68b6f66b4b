package models

import "time"

// MessageType discriminates the two notice shapes
type MessageType string

const (
	MessageTypeAnnouncement MessageType = "announcement"
	MessageTypeFuneral      MessageType = "funeral"
)

// DeathType applies to funeral notices only
type DeathType string

const (
	DeathTypeNew DeathType = "new"
	DeathTypeOld DeathType = "old"
)

// MessageStatus is recorded on the message but has no transition logic;
// no delivery subsystem updates it. Messages are created as "sent".
type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

// Message is an outbound notice sent to an organization's members. The type
// field tags which of the two field sets is meaningful: announcements carry
// Title/Place/Time/Content, funeral notices carry Place/Address/DeathType/
// Content. Shape checks beyond the struct tags live in the message service.
type Message struct {
	ID               string        `json:"id" dynamodbav:"id"`
	OrganizationID   string        `json:"organizationId" dynamodbav:"organization_id" validate:"required"`
	OrganizationName string        `json:"organizationName,omitempty" dynamodbav:"organization_name,omitempty"` // resolved, server-filled
	Sender           string        `json:"sender,omitempty" dynamodbav:"sender,omitempty" validate:"omitempty,max=100"`
	Type             MessageType   `json:"type" dynamodbav:"type" validate:"required,oneof=announcement funeral"`
	Title            string        `json:"title,omitempty" dynamodbav:"title,omitempty" validate:"omitempty,max=200"`
	Place            string        `json:"place,omitempty" dynamodbav:"place,omitempty" validate:"omitempty,max=200"`
	Time             string        `json:"time,omitempty" dynamodbav:"time,omitempty"`
	Address          string        `json:"address,omitempty" dynamodbav:"address,omitempty" validate:"omitempty,max=200"`
	DeathType        DeathType     `json:"deathType,omitempty" dynamodbav:"death_type,omitempty" validate:"omitempty,oneof=new old"`
	Content          string        `json:"content" dynamodbav:"content" validate:"required,max=2000"`
	Recipients       int           `json:"recipients" dynamodbav:"recipients" validate:"omitempty,min=0"`
	Status           MessageStatus `json:"status,omitempty" dynamodbav:"status,omitempty"`
	SentAt           time.Time     `json:"sentAt" dynamodbav:"sent_at"`
}

// MessageWindow is the result of a time-window query over an organization's
// messages.
type MessageWindow struct {
	Period   string     `json:"period"`
	Count    int        `json:"count"`
	Messages []*Message `json:"messages"`
}
