// file: internals/features/festival/participations/model/participation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participation adalah satu baris keikutsertaan pada sebuah event.
// StudentID nil berarti entri tim (hasil scoring TEAM), bukan siswa.
type Participation struct {
	ParticipationID        uuid.UUID  `json:"participation_id"         gorm:"column:participation_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ParticipationEventID   uuid.UUID  `json:"participation_event_id"   gorm:"column:participation_event_id;type:uuid;not null;index;uniqueIndex:uq_participation_student_event"`
	ParticipationStudentID *uuid.UUID `json:"participation_student_id" gorm:"column:participation_student_id;type:uuid;index;uniqueIndex:uq_participation_student_event,where:participation_student_id IS NOT NULL"`
	ParticipationTeamID    uuid.UUID  `json:"participation_team_id"    gorm:"column:participation_team_id;type:uuid;not null;index"`

	// registered | winner
	ParticipationStatus string `json:"participation_status" gorm:"column:participation_status;type:varchar(20);not null;default:'registered'"`
	// 1 | 2 | 3, nil kalau belum/tidak juara
	ParticipationResultPosition *int `json:"participation_result_position" gorm:"column:participation_result_position;type:int"`
	ParticipationPoints         int  `json:"participation_points"          gorm:"column:participation_points;type:int;not null;default:0"`
	// pending | present | absent
	ParticipationAttendance string `json:"participation_attendance" gorm:"column:participation_attendance;type:varchar(10);not null;default:'pending'"`
	// Nilai huruf penampilan (A/B/C), opsional, terpisah dari poin juara.
	ParticipationPerformanceGrade *string `json:"participation_performance_grade" gorm:"column:participation_performance_grade;type:varchar(2)"`

	ParticipationCreatedAt time.Time `json:"participation_created_at" gorm:"column:participation_created_at;type:timestamptz;not null;default:now()"`
	ParticipationUpdatedAt time.Time `json:"participation_updated_at" gorm:"column:participation_updated_at;type:timestamptz;not null;default:now()"`
}

func (Participation) TableName() string { return "participations" }

func (m *Participation) BeforeUpdate(tx *gorm.DB) error {
	m.ParticipationUpdatedAt = time.Now().UTC()
	return nil
}

// IsTeamEntry true untuk baris hasil scoring mode TEAM.
func (m *Participation) IsTeamEntry() bool { return m.ParticipationStudentID == nil }

func ScopeByEvent(eventID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("participation_event_id = ?", eventID)
	}
}

func ScopeByStudent(studentID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("participation_student_id = ?", studentID)
	}
}

func ScopeStudentEntries(db *gorm.DB) *gorm.DB {
	return db.Where("participation_student_id IS NOT NULL")
}

func ScopeTeamEntries(db *gorm.DB) *gorm.DB {
	return db.Where("participation_student_id IS NULL")
}
