// file: internals/features/festival/students/controller/section_limit_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"artsfest_backend/internals/features/festival/students/dto"
	"artsfest_backend/internals/features/festival/students/model"
	helper "artsfest_backend/internals/helpers"
)

type SectionLimitController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSectionLimitController(db *gorm.DB) *SectionLimitController {
	return &SectionLimitController{DB: db, Validate: validator.New()}
}

// ========== List ==========
func (ctl *SectionLimitController) GetAll(c *fiber.Ctx) error {
	var list []model.SectionLimit
	if err := ctl.DB.
		Order("section_limit_section ASC, section_limit_category ASC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil batas section")
	}
	return helper.Success(c, "OK", list)
}

// ========== Upsert ==========
// Satu baris per (section, category); POST ulang menimpa nilai max.
func (ctl *SectionLimitController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSectionLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.SectionLimit{
		SectionLimitSection:  req.SectionLimitSection,
		SectionLimitCategory: req.SectionLimitCategory,
		SectionLimitMax:      *req.SectionLimitMax,
	}
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "section_limit_section"},
			{Name: "section_limit_category"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"section_limit_max":        *req.SectionLimitMax,
			"section_limit_updated_at": gorm.Expr("now()"),
		}),
	}).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan batas section")
	}
	return helper.Success(c, "Batas section tersimpan", m)
}

// ========== Delete ==========
func (ctl *SectionLimitController) Delete(c *fiber.Ctx) error {
	section := c.Query("section")
	category := c.Query("category")
	if section == "" || category == "" {
		return helper.Error(c, fiber.StatusBadRequest, "section dan category wajib diisi")
	}
	res := ctl.DB.Delete(&model.SectionLimit{},
		"section_limit_section = ? AND section_limit_category = ?", section, category)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus batas section")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Batas section tidak ditemukan")
	}
	return helper.Success(c, "Batas section dihapus", nil)
}
