// file: internals/features/scoring/results/model/grade_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeSetting memetakan (grade_type, position) ke poin.
// Contoh default: A → 10/7/5, B → 7/5/3, C → 5/3/1.
type GradeSetting struct {
	GradeSettingID        uuid.UUID `json:"grade_setting_id"        gorm:"column:grade_setting_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GradeSettingGradeType string    `json:"grade_setting_grade_type" gorm:"column:grade_setting_grade_type;type:varchar(2);not null;uniqueIndex:uq_grade_setting"`
	GradeSettingPosition  int       `json:"grade_setting_position"   gorm:"column:grade_setting_position;type:int;not null;uniqueIndex:uq_grade_setting"`
	GradeSettingPoints    int       `json:"grade_setting_points"     gorm:"column:grade_setting_points;type:int;not null"`

	GradeSettingCreatedAt time.Time `json:"grade_setting_created_at" gorm:"column:grade_setting_created_at;type:timestamptz;not null;default:now()"`
	GradeSettingUpdatedAt time.Time `json:"grade_setting_updated_at" gorm:"column:grade_setting_updated_at;type:timestamptz;not null;default:now()"`
}

func (GradeSetting) TableName() string { return "grade_settings" }
