package models

import (
	"fmt"

	"github.com/lib/pq"
)

// CallbackEvent is one recording status notification from the telephony provider.
type CallbackEvent struct {
	Number            string `json:"number"`
	CallSid           string `json:"call_sid"`
	RecordingSid      string `json:"recording_sid"`
	RecordingURL      string `json:"recording_url"`
	RecordingDuration string `json:"recording_duration"`
	Status            string `json:"status"`
}

// DedupeKey identifies a delivery of this event. Empty when the event carries no
// recording identifier to deduplicate on.
func (e CallbackEvent) DedupeKey() string {
	if e.RecordingSid == "" {
		return ""
	}
	return fmt.Sprintf("callback:%s:%s:%s", e.CallSid, e.RecordingSid, e.Status)
}

// AutoCreatedRecord builds the record stored when a callback arrives for an unknown
// number. Its history holds exactly this event and never the sentinel status.
func (e CallbackEvent) AutoCreatedRecord() *CallRecord {
	return &CallRecord{
		ReceiverFirstName:  AutoCreatedFirstName,
		Number:             e.Number,
		Description:        AutoCreatedDescription,
		CallSids:           pq.StringArray{e.CallSid},
		RecordingSids:      pq.StringArray{e.RecordingSid},
		RecordingUrls:      pq.StringArray{e.RecordingURL},
		RecordingDurations: pq.StringArray{e.RecordingDuration},
		Statuses:           pq.StringArray{e.Status},
	}
}
