// file: internals/features/assets/controller/site_asset_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artsfest_backend/internals/configs"
	"artsfest_backend/internals/features/assets/model"
	helper "artsfest_backend/internals/helpers"
)

const maxUploadBytes = 2 * 1024 * 1024 // 2MB

var allowedKeys = map[string]bool{
	model.KeyAdmitCardHeader: true,
	model.KeyRulebookLink:    true,
}

type SiteAssetController struct {
	DB *gorm.DB
}

func NewSiteAssetController(db *gorm.DB) *SiteAssetController {
	return &SiteAssetController{DB: db}
}

/* ================= GET ALL ================= */

// GetAll mengembalikan semua aset sebagai map key -> value.
func (ctl *SiteAssetController) GetAll(c *fiber.Ctx) error {
	var list []model.SiteAsset
	if err := ctl.DB.Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil aset")
	}
	out := make(map[string]string, len(list))
	for i := range list {
		out[list[i].SiteAssetKey] = list[i].SiteAssetValue
	}
	return helper.Success(c, "OK", out)
}

/* ================= SET VALUE ================= */

// SetValue menyimpan aset bertipe teks/URL (mis. rulebook_link).
func (ctl *SiteAssetController) SetValue(c *fiber.Ctx) error {
	key := c.Params("key")
	if !allowedKeys[key] {
		return helper.Error(c, fiber.StatusBadRequest, "Key aset tidak dikenali")
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(req.Value) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "value wajib diisi")
	}

	if err := ctl.upsert(key, req.Value); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan aset")
	}
	return helper.Success(c, "Aset tersimpan", fiber.Map{"key": key, "value": req.Value})
}

/* ================= UPLOAD IMAGE ================= */

// UploadImage menerima gambar (max 2MB), mengkonversi ke WebP, lalu
// mengunggah ke storage dan menyimpan URL publiknya sebagai value.
func (ctl *SiteAssetController) UploadImage(c *fiber.Ctx) error {
	key := c.Params("key")
	if !allowedKeys[key] {
		return helper.Error(c, fiber.StatusBadRequest, "Key aset tidak dikenali")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak ditemukan di form")
	}
	if fileHeader.Size > maxUploadBytes {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 2MB")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return helper.Error(c, fiber.StatusUnsupportedMediaType, "File harus berupa gambar")
	}

	buf, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Gagal memproses gambar")
	}

	filename := helper.GenerateUniqueFilename("site-assets", fileHeader.Filename) + ".webp"
	if err := helper.UploadToSupabase(configs.SupabaseBucket, filename, "image/webp", buf); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengunggah gambar")
	}
	url := helper.PublicURL(configs.SupabaseBucket, filename)

	// Hapus file lama best-effort supaya bucket tidak menumpuk.
	var old model.SiteAsset
	if err := ctl.DB.First(&old, "site_asset_key = ?", key).Error; err == nil {
		if idx := strings.Index(old.SiteAssetValue, "/site-assets/"); idx >= 0 {
			_ = helper.DeleteFromSupabase(configs.SupabaseBucket, old.SiteAssetValue[idx+1:])
		}
	}

	if err := ctl.upsert(key, url); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan aset")
	}
	return helper.Success(c, "Gambar terunggah", fiber.Map{"key": key, "value": url})
}

/* ================= DELETE ================= */

func (ctl *SiteAssetController) Delete(c *fiber.Ctx) error {
	key := c.Params("key")
	res := ctl.DB.Delete(&model.SiteAsset{}, "site_asset_key = ?", key)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus aset")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Aset tidak ditemukan")
	}
	return helper.Success(c, "Aset dihapus", nil)
}

func (ctl *SiteAssetController) upsert(key, value string) error {
	return ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "site_asset_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"site_asset_value":      value,
			"site_asset_updated_at": gorm.Expr("now()"),
		}),
	}).Create(&model.SiteAsset{
		SiteAssetKey:   key,
		SiteAssetValue: value,
	}).Error
}
