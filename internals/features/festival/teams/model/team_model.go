// file: internals/features/festival/teams/model/team_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	TeamID       uuid.UUID `json:"team_id"        gorm:"column:team_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TeamName     string    `json:"team_name"      gorm:"column:team_name;type:varchar(80);not null;unique"`
	TeamColorHex string    `json:"team_color_hex" gorm:"column:team_color_hex;type:varchar(9);not null;default:'#888888'"`

	TeamCreatedAt time.Time `json:"team_created_at" gorm:"column:team_created_at;type:timestamptz;not null;default:now()"`
	TeamUpdatedAt time.Time `json:"team_updated_at" gorm:"column:team_updated_at;type:timestamptz;not null;default:now()"`
}

func (Team) TableName() string { return "teams" }
