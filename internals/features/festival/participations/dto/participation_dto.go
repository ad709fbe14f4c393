// file: internals/features/festival/participations/dto/participation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	eventDTO "artsfest_backend/internals/features/festival/events/dto"
	"artsfest_backend/internals/features/festival/participations/model"
	studentDTO "artsfest_backend/internals/features/festival/students/dto"
)

/* ===== Requests ===== */

// ToggleRequest mendaftarkan/membatalkan satu sel matriks.
// Section adalah tab yang sedang aktif (kuota dihitung per tab);
// Confirmed=true mengulangi request setelah peringatan kuota.
type ToggleRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	EventID   uuid.UUID `json:"event_id"   validate:"required"`
	Section   string    `json:"section"    validate:"required,oneof=Senior Junior Sub-Junior General Foundation"`
	Confirmed bool      `json:"confirmed"`
}

type UpdateAttendanceRequest struct {
	Attendance string `json:"attendance" validate:"required,oneof=pending present absent"`
}

type UpdatePerformanceGradeRequest struct {
	PerformanceGrade *string `json:"performance_grade" validate:"omitempty,oneof=A B C"`
}

/* ===== Responses ===== */

type ParticipationResponse struct {
	ParticipationID        uuid.UUID  `json:"participation_id"`
	ParticipationEventID   uuid.UUID  `json:"participation_event_id"`
	ParticipationStudentID *uuid.UUID `json:"participation_student_id,omitempty"`
	ParticipationTeamID    uuid.UUID  `json:"participation_team_id"`
	Status                 string     `json:"status"`
	ResultPosition         *int       `json:"result_position,omitempty"`
	Points                 int        `json:"points"`
	Attendance             string     `json:"attendance"`
	PerformanceGrade       *string    `json:"performance_grade,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

func FromModel(m *model.Participation) *ParticipationResponse {
	return &ParticipationResponse{
		ParticipationID:        m.ParticipationID,
		ParticipationEventID:   m.ParticipationEventID,
		ParticipationStudentID: m.ParticipationStudentID,
		ParticipationTeamID:    m.ParticipationTeamID,
		Status:                 m.ParticipationStatus,
		ResultPosition:         m.ParticipationResultPosition,
		Points:                 m.ParticipationPoints,
		Attendance:             m.ParticipationAttendance,
		PerformanceGrade:       m.ParticipationPerformanceGrade,
		CreatedAt:              m.ParticipationCreatedAt,
	}
}

func FromModels(list []model.Participation) []ParticipationResponse {
	out := make([]ParticipationResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

// MatrixStudentRow: satu baris matriks = siswa + sel event yang
// dicentang + sisa kuota di tab ini.
type MatrixStudentRow struct {
	studentDTO.StudentResponse
	RegisteredEventIDs []uuid.UUID `json:"registered_event_ids"`
	Remaining          int         `json:"remaining"`
}

// MatrixResponse untuk satu (tim, tab).
type MatrixResponse struct {
	TeamID      uuid.UUID                `json:"team_id"`
	Section     string                   `json:"section"`
	Category    string                   `json:"category"`
	Limit       int                      `json:"limit"`
	Events      []eventDTO.EventResponse `json:"events"`
	EventCounts map[uuid.UUID]int        `json:"event_counts"`
	Students    []MatrixStudentRow       `json:"students"`
}
