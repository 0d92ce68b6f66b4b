package models

import "time"

// KPI is a dashboard headline figure. Value and Change come pre-formatted so
// the UI renders them verbatim.
type KPI struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

// MessageVolume is one bar of the weekly volume chart
type MessageVolume struct {
	Day      string `json:"day"`
	Messages int    `json:"messages"`
}

// OrgMessageCount is one bar of the messages-per-organization chart
type OrgMessageCount struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"`
}

// DashboardStats is the per-organization headline block of the org console
type DashboardStats struct {
	TotalMembers  int `json:"totalMembers"`
	TotalMessages int `json:"totalMessages"`
	ActiveUsers   int `json:"activeUsers"`
}

// AnalyticsSnapshot is the cached output of one full analytics recompute,
// refreshed on a schedule by the snapshot worker.
type AnalyticsSnapshot struct {
	KPIs          []*KPI             `json:"kpis"`
	MessageVolume []*MessageVolume   `json:"messageVolume"`
	PerOrg        []*OrgMessageCount `json:"messagesPerOrg"`
	ComputedAt    time.Time          `json:"computedAt"`
}
