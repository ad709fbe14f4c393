// file: internals/features/festival/events/dto/event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"artsfest_backend/internals/features/festival/events/model"
)

/* ===== Requests ===== */

type CreateEventRequest struct {
	EventName              string   `json:"event_name"               validate:"required,min=2,max=120"`
	EventCode              string   `json:"event_code"               validate:"required,min=2,max=20"`
	EventCategory          string   `json:"event_category"           validate:"required,oneof=ON_STAGE OFF_STAGE"`
	EventApplicableSection []string `json:"event_applicable_section" validate:"required,min=1,dive,oneof=Senior Junior Sub-Junior General Foundation"`
	EventGradeType         string   `json:"event_grade_type"         validate:"required,oneof=A B C"`
	EventMaxPerTeam        int      `json:"event_max_per_team"       validate:"omitempty,min=0,max=100"`
	EventVenue             *string  `json:"event_venue"              validate:"omitempty,max=120"`
	EventStageTime         *string  `json:"event_stage_time"         validate:"omitempty,max=40"`
}

type UpdateEventRequest struct {
	EventName              *string  `json:"event_name"               validate:"omitempty,min=2,max=120"`
	EventCode              *string  `json:"event_code"               validate:"omitempty,min=2,max=20"`
	EventCategory          *string  `json:"event_category"           validate:"omitempty,oneof=ON_STAGE OFF_STAGE"`
	EventApplicableSection []string `json:"event_applicable_section" validate:"omitempty,min=1,dive,oneof=Senior Junior Sub-Junior General Foundation"`
	EventGradeType         *string  `json:"event_grade_type"         validate:"omitempty,oneof=A B C"`
	EventMaxPerTeam        *int     `json:"event_max_per_team"       validate:"omitempty,min=0,max=100"`
	EventVenue             *string  `json:"event_venue"              validate:"omitempty,max=120"`
	EventStageTime         *string  `json:"event_stage_time"         validate:"omitempty,max=40"`
}

func (r *CreateEventRequest) ToModel() *model.Event {
	return &model.Event{
		EventName:              r.EventName,
		EventCode:              r.EventCode,
		EventCategory:          r.EventCategory,
		EventApplicableSection: pq.StringArray(r.EventApplicableSection),
		EventGradeType:         r.EventGradeType,
		EventMaxPerTeam:        r.EventMaxPerTeam,
		EventVenue:             r.EventVenue,
		EventStageTime:         r.EventStageTime,
	}
}

func (r *UpdateEventRequest) ApplyTo(m *model.Event) {
	if r.EventName != nil {
		m.EventName = *r.EventName
	}
	if r.EventCode != nil {
		m.EventCode = *r.EventCode
	}
	if r.EventCategory != nil {
		m.EventCategory = *r.EventCategory
	}
	if len(r.EventApplicableSection) > 0 {
		m.EventApplicableSection = pq.StringArray(r.EventApplicableSection)
	}
	if r.EventGradeType != nil {
		m.EventGradeType = *r.EventGradeType
	}
	if r.EventMaxPerTeam != nil {
		m.EventMaxPerTeam = *r.EventMaxPerTeam
	}
	if r.EventVenue != nil {
		m.EventVenue = r.EventVenue
	}
	if r.EventStageTime != nil {
		m.EventStageTime = r.EventStageTime
	}
}

/* ===== Responses ===== */

type EventResponse struct {
	EventID                uuid.UUID `json:"event_id"`
	EventName              string    `json:"event_name"`
	EventCode              string    `json:"event_code"`
	EventCategory          string    `json:"event_category"`
	EventApplicableSection []string  `json:"event_applicable_section"`
	EventGradeType         string    `json:"event_grade_type"`
	EventMaxPerTeam        int       `json:"event_max_per_team"`
	EventVenue             *string   `json:"event_venue,omitempty"`
	EventStageTime         *string   `json:"event_stage_time,omitempty"`
	EventCreatedAt         time.Time `json:"event_created_at"`
}

// EventWithCountResponse menambahkan jumlah peserta terdaftar.
type EventWithCountResponse struct {
	EventResponse
	ParticipantCount int `json:"participant_count"`
}

func FromModel(m *model.Event) *EventResponse {
	return &EventResponse{
		EventID:                m.EventID,
		EventName:              m.EventName,
		EventCode:              m.EventCode,
		EventCategory:          m.EventCategory,
		EventApplicableSection: []string(m.EventApplicableSection),
		EventGradeType:         m.EventGradeType,
		EventMaxPerTeam:        m.EventMaxPerTeam,
		EventVenue:             m.EventVenue,
		EventStageTime:         m.EventStageTime,
		EventCreatedAt:         m.EventCreatedAt,
	}
}

func FromModels(list []model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
