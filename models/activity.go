package models

import "time"

// ActivityType classifies a feed entry by the entity it concerns
type ActivityType string

const (
	ActivityTypeMessage ActivityType = "message"
	ActivityTypeOrg     ActivityType = "org"
	ActivityTypeMember  ActivityType = "member"
)

// Activity is one append-only feed entry. Entries are recorded by the
// services on every successful mutation and are never updated afterwards.
type Activity struct {
	ID        string       `json:"id" dynamodbav:"id"`
	Type      ActivityType `json:"type" dynamodbav:"type"`
	Text      string       `json:"text" dynamodbav:"text"`
	Time      string       `json:"time" dynamodbav:"time"` // humanized, e.g. "2 minutes ago"
	Timestamp time.Time    `json:"timestamp" dynamodbav:"timestamp"`
}
