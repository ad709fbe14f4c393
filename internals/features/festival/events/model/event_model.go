// file: internals/features/festival/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	EventID   uuid.UUID `json:"event_id"   gorm:"column:event_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EventName string    `json:"event_name" gorm:"column:event_name;type:varchar(120);not null"`
	// Kode singkat untuk call sheet & admit card, mis. "SS-01"
	EventCode string `json:"event_code" gorm:"column:event_code;type:varchar(20);not null;uniqueIndex"`
	// ON_STAGE | OFF_STAGE
	EventCategory string `json:"event_category" gorm:"column:event_category;type:varchar(20);not null;index"`
	// Section tag (fisik atau virtual): Senior, Junior, Sub-Junior, General, Foundation
	EventApplicableSection pq.StringArray `json:"event_applicable_section" gorm:"column:event_applicable_section;type:text[];not null"`
	// A | B | C — menentukan tabel poin yang dipakai saat scoring
	EventGradeType string `json:"event_grade_type" gorm:"column:event_grade_type;type:varchar(2);not null;default:'A'"`
	// Kuota pendaftar per tim untuk event ini; 0 berarti tanpa batas
	EventMaxPerTeam int     `json:"event_max_per_team" gorm:"column:event_max_per_team;type:int;not null;default:0"`
	EventVenue      *string `json:"event_venue"     gorm:"column:event_venue;type:varchar(120)"`
	EventStageTime *string `json:"event_stage_time" gorm:"column:event_stage_time;type:varchar(40)"`

	EventCreatedAt time.Time `json:"event_created_at" gorm:"column:event_created_at;type:timestamptz;not null;default:now()"`
	EventUpdatedAt time.Time `json:"event_updated_at" gorm:"column:event_updated_at;type:timestamptz;not null;default:now()"`
}

func (Event) TableName() string { return "events" }

func (m *Event) BeforeUpdate(tx *gorm.DB) error {
	m.EventUpdatedAt = time.Now().UTC()
	return nil
}

// AppliesTo true jika salah satu tag event cocok dengan tag yang diminta.
func (m *Event) AppliesTo(tag string) bool {
	for _, s := range m.EventApplicableSection {
		if s == tag {
			return true
		}
	}
	return false
}

func ScopeByCategory(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("event_category = ?", category)
	}
}

// ScopeBySectionTag memakai operator overlap array Postgres.
func ScopeBySectionTag(tags []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("event_applicable_section && ?", pq.StringArray(tags))
	}
}
