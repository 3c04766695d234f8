// Package models defines data structures used throughout the application.
package models

import (
	"time"

	"github.com/lib/pq"
)

// StatusNotCalled marks a record that has no call history yet.
const StatusNotCalled = "Not Called"

// AutoCreatedFirstName and AutoCreatedDescription fill the identity of records
// created by a callback for a number nobody provisioned.
const (
	AutoCreatedFirstName   = "Unknown"
	AutoCreatedDescription = "Auto-created from recording callback"
)

// CallRecord represents a call target in the database.
//
// CallSids, RecordingSids, RecordingUrls and RecordingDurations are index-aligned:
// entry i of each one describes the same call attempt.
type CallRecord struct {
	ID                 int64          `db:"id" json:"id"`
	ReceiverFirstName  string         `db:"receiver_first_name" json:"receiver_first_name"`
	ReceiverLastName   string         `db:"receiver_last_name" json:"receiver_last_name"`
	Number             string         `db:"number" json:"number"`
	Company            string         `db:"company" json:"company"`
	Description        string         `db:"description" json:"description"`
	PersonalNotes      string         `db:"personal_notes" json:"personal_notes"`
	CallSids           pq.StringArray `db:"call_sids" json:"call_sids"`
	RecordingSids      pq.StringArray `db:"recording_sids" json:"recording_sids"`
	RecordingUrls      pq.StringArray `db:"recording_urls" json:"recording_urls"`
	RecordingDurations pq.StringArray `db:"recording_durations" json:"recording_durations"`
	Statuses           pq.StringArray `db:"statuses" json:"statuses"`
	Source             *string        `db:"source" json:"source,omitempty"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// NewCallRecord is the identity a caller provisions before any call is placed.
type NewCallRecord struct {
	ReceiverFirstName string
	ReceiverLastName  string
	Number            string
	Company           string
	Description       string
	PersonalNotes     string
	Source            string
}

// Record builds a fresh record with empty history and the sentinel status.
func (n NewCallRecord) Record() *CallRecord {
	rec := &CallRecord{
		ReceiverFirstName:  n.ReceiverFirstName,
		ReceiverLastName:   n.ReceiverLastName,
		Number:             n.Number,
		Company:            n.Company,
		Description:        n.Description,
		PersonalNotes:      n.PersonalNotes,
		CallSids:           pq.StringArray{},
		RecordingSids:      pq.StringArray{},
		RecordingUrls:      pq.StringArray{},
		RecordingDurations: pq.StringArray{},
		Statuses:           pq.StringArray{StatusNotCalled},
	}
	if n.Source != "" {
		source := n.Source
		rec.Source = &source
	}
	return rec
}

// CallRecordUpdate lists every slot an edit may touch. Nil slots are left alone.
// Status is appended to the status history, never overwritten.
type CallRecordUpdate struct {
	ReceiverFirstName *string
	ReceiverLastName  *string
	Company           *string
	Description       *string
	PersonalNotes     *string
	Status            *string
}

// IsEmpty reports whether the update carries no slot at all.
func (u CallRecordUpdate) IsEmpty() bool {
	return u.ReceiverFirstName == nil &&
		u.ReceiverLastName == nil &&
		u.Company == nil &&
		u.Description == nil &&
		u.PersonalNotes == nil &&
		u.Status == nil
}

// SearchFilter narrows a listing. Empty fields do not filter.
type SearchFilter struct {
	// Name is matched case-insensitively as a substring of first name, last name or company.
	Name string
	// Status must appear somewhere in the status history.
	Status string
}
