package handler

import (
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/api"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/models"
)

func toAPIRecord(rec *models.CallRecord) api.CallRecord {
	out := api.CallRecord{
		Id:                 rec.ID,
		ReceiverFirstName:  rec.ReceiverFirstName,
		ReceiverLastName:   rec.ReceiverLastName,
		Number:             rec.Number,
		Company:            rec.Company,
		Description:        rec.Description,
		PersonalNotes:      rec.PersonalNotes,
		CallSids:           nonNil(rec.CallSids),
		RecordingSids:      nonNil(rec.RecordingSids),
		RecordingUrls:      nonNil(rec.RecordingUrls),
		RecordingDurations: nonNil(rec.RecordingDurations),
		Statuses:           nonNil(rec.Statuses),
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
	if rec.Source != nil {
		source := *rec.Source
		out.Source = &source
	}
	return out
}

func toAPIRecords(recs []*models.CallRecord) []api.CallRecord {
	out := make([]api.CallRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toAPIRecord(rec))
	}
	return out
}

// nonNil keeps empty histories rendering as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toUpdate(req api.UpdateCallRecordRequest) models.CallRecordUpdate {
	return models.CallRecordUpdate{
		ReceiverFirstName: req.ReceiverFirstName,
		ReceiverLastName:  req.ReceiverLastName,
		Company:           req.Company,
		Description:       req.Description,
		PersonalNotes:     req.PersonalNotes,
		Status:            req.Status,
	}
}

func toSearchFilter(params api.SearchCallRecordsParams) models.SearchFilter {
	var filter models.SearchFilter
	if params.Name != nil {
		filter.Name = *params.Name
	}
	if params.Status != nil {
		filter.Status = *params.Status
	}
	return filter
}
