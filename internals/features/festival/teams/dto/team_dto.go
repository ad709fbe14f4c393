// file: internals/features/festival/teams/dto/team_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"artsfest_backend/internals/features/festival/teams/model"
)

/* ===== Requests ===== */

type CreateTeamRequest struct {
	TeamName     string `json:"team_name"      validate:"required,min=2,max=80"`
	TeamColorHex string `json:"team_color_hex" validate:"omitempty,hexcolor"`
}

type UpdateTeamRequest struct {
	TeamName     *string `json:"team_name"      validate:"omitempty,min=2,max=80"`
	TeamColorHex *string `json:"team_color_hex" validate:"omitempty,hexcolor"`
}

func (r *CreateTeamRequest) ToModel() *model.Team {
	m := &model.Team{
		TeamName:     r.TeamName,
		TeamColorHex: r.TeamColorHex,
	}
	if m.TeamColorHex == "" {
		m.TeamColorHex = "#888888"
	}
	return m
}

func (r *UpdateTeamRequest) ApplyTo(m *model.Team) {
	if r.TeamName != nil {
		m.TeamName = *r.TeamName
	}
	if r.TeamColorHex != nil {
		m.TeamColorHex = *r.TeamColorHex
	}
}

/* ===== Responses ===== */

type TeamResponse struct {
	TeamID       uuid.UUID `json:"team_id"`
	TeamName     string    `json:"team_name"`
	TeamColorHex string    `json:"team_color_hex"`
	TeamCreatedAt time.Time `json:"team_created_at"`
}

// TeamWithStatsResponse dipakai halaman dashboard tim.
type TeamWithStatsResponse struct {
	TeamResponse
	StudentCount int `json:"student_count"`
	TotalPoints  int `json:"total_points"`
}

func FromModel(m *model.Team) *TeamResponse {
	return &TeamResponse{
		TeamID:        m.TeamID,
		TeamName:      m.TeamName,
		TeamColorHex:  m.TeamColorHex,
		TeamCreatedAt: m.TeamCreatedAt,
	}
}

func FromModels(list []model.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
