// file: internals/features/festival/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	StudentID      uuid.UUID `json:"student_id"       gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentTeamID  uuid.UUID `json:"student_team_id"  gorm:"column:student_team_id;type:uuid;not null;index"`
	StudentName    string    `json:"student_name"     gorm:"column:student_name;type:varchar(120);not null"`
	StudentChestNo string    `json:"student_chest_no" gorm:"column:student_chest_no;type:varchar(20);not null"`
	// Senior | Junior | Sub-Junior (fisik, bukan virtual tag)
	StudentSection string  `json:"student_section" gorm:"column:student_section;type:varchar(20);not null;index"`
	StudentClass   *string `json:"student_class"   gorm:"column:student_class;type:varchar(30)"`

	StudentCreatedAt time.Time `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;default:now()"`
	StudentUpdatedAt time.Time `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;default:now()"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now().UTC()
	return nil
}

// ScopeBySection memfilter berdasarkan section fisik.
func ScopeBySection(section string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("student_section = ?", section)
	}
}

func ScopeByTeam(teamID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("student_team_id = ?", teamID)
	}
}
