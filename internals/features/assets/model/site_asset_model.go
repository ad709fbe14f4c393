// file: internals/features/assets/model/site_asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteAsset adalah key-value aset situs (URL gambar / tautan).
// Key yang dikenal: admit_card_header, rulebook_link.
type SiteAsset struct {
	SiteAssetID    uuid.UUID `json:"site_asset_id"    gorm:"column:site_asset_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteAssetKey   string    `json:"site_asset_key"   gorm:"column:site_asset_key;type:varchar(60);not null;unique"`
	SiteAssetValue string    `json:"site_asset_value" gorm:"column:site_asset_value;type:text;not null"`

	SiteAssetCreatedAt time.Time `json:"site_asset_created_at" gorm:"column:site_asset_created_at;type:timestamptz;not null;default:now()"`
	SiteAssetUpdatedAt time.Time `json:"site_asset_updated_at" gorm:"column:site_asset_updated_at;type:timestamptz;not null;default:now()"`
}

func (SiteAsset) TableName() string { return "site_assets" }

func (m *SiteAsset) BeforeUpdate(tx *gorm.DB) error {
	m.SiteAssetUpdatedAt = time.Now().UTC()
	return nil
}

const (
	KeyAdmitCardHeader = "admit_card_header"
	KeyRulebookLink    = "rulebook_link"
)
