package models

import "time"

// RecordResponse is one (type, value) record pair.
type RecordResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EventResponse is one journaled change event.
type EventResponse struct {
	ID         int64            `json:"id"`
	DetectedAt time.Time        `json:"detected_at"`
	Subdomain  string           `json:"subdomain"`
	FQDN       string           `json:"fqdn"`
	OldRecords []RecordResponse `json:"old_records"`
	NewRecords []RecordResponse `json:"new_records"`
}

// EventsResponse wraps a page of change events.
type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

// SubdomainRecords is one monitored name's records in the baseline.
type SubdomainRecords struct {
	Name    string           `json:"name"`
	Records []RecordResponse `json:"records"`
}

// BaselineResponse is the current baseline snapshot.
type BaselineResponse struct {
	Domain     string             `json:"domain"`
	Subdomains []SubdomainRecords `json:"subdomains"`
}
