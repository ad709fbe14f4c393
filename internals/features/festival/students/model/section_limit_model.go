// file: internals/features/festival/students/model/section_limit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionLimit membatasi jumlah event per siswa untuk kombinasi
// (section, category). Baris dengan section/category kosong jadi fallback.
type SectionLimit struct {
	SectionLimitID       uuid.UUID `json:"section_limit_id"       gorm:"column:section_limit_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SectionLimitSection  string    `json:"section_limit_section"  gorm:"column:section_limit_section;type:varchar(20);not null;uniqueIndex:uq_section_limit"`
	SectionLimitCategory string    `json:"section_limit_category" gorm:"column:section_limit_category;type:varchar(20);not null;uniqueIndex:uq_section_limit"`
	SectionLimitMax      int       `json:"section_limit_max"      gorm:"column:section_limit_max;type:int;not null;default:100"`

	SectionLimitCreatedAt time.Time `json:"section_limit_created_at" gorm:"column:section_limit_created_at;type:timestamptz;not null;default:now()"`
	SectionLimitUpdatedAt time.Time `json:"section_limit_updated_at" gorm:"column:section_limit_updated_at;type:timestamptz;not null;default:now()"`
}

func (SectionLimit) TableName() string { return "section_limits" }
