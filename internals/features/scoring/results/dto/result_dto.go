// file: internals/features/scoring/results/dto/result_dto.go
package dto

import (
	"github.com/google/uuid"

	participationDTO "artsfest_backend/internals/features/festival/participations/dto"
)

/* ===== Requests ===== */

type IndividualPlacementRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Position  int       `json:"position"   validate:"required,min=1,max=3"`
}

type TeamPlacementRequest struct {
	TeamID   uuid.UUID `json:"team_id"  validate:"required"`
	Position int       `json:"position" validate:"required,min=1,max=3"`
}

// SaveResultsRequest menyimpan hasil satu event. Mode selalu eksplisit;
// suggested_mode dari scoreboard hanya nilai awal form.
type SaveResultsRequest struct {
	Mode       string                       `json:"mode"       validate:"required,oneof=INDIVIDUAL TEAM"`
	Individual []IndividualPlacementRequest `json:"individual" validate:"omitempty,max=3,dive"`
	Teams      []TeamPlacementRequest       `json:"teams"      validate:"omitempty,max=3,dive"`
}

type UpsertGradeSettingRequest struct {
	GradeType string `json:"grade_type" validate:"required,oneof=A B C"`
	Position  int    `json:"position"   validate:"required,min=1,max=3"`
	Points    int    `json:"points"     validate:"required,min=0"`
}

/* ===== Responses ===== */

type ScoreboardResponse struct {
	EventID       uuid.UUID                                `json:"event_id"`
	EventName     string                                   `json:"event_name"`
	GradeType     string                                   `json:"grade_type"`
	SuggestedMode string                                   `json:"suggested_mode"`
	Entries       []participationDTO.ParticipationResponse `json:"entries"`
}
