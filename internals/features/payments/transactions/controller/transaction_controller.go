// file: internals/features/payments/transactions/controller/transaction_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/features/payments/transactions/dto"
	"artsfest_backend/internals/features/payments/transactions/model"
	"artsfest_backend/internals/features/payments/transactions/service"
	helper "artsfest_backend/internals/helpers"
)

type TransactionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db, Validate: validator.New()}
}

/* ================= CREATE ================= */

func (ctl *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	m := req.ToModel(userID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat transaksi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi tercatat", dto.FromModel(m))
}

/* ================= GET ALL + STATS ================= */

// GetAll mendukung filter ?type=&method=&from=&to= dan selalu menyertakan
// ringkasan saldo dari seluruh hasil filter.
func (ctl *TransactionController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.Transaction{})
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		if v != model.TypeCredit && v != model.TypeDebit {
			return helper.Error(c, fiber.StatusBadRequest, "type tidak valid")
		}
		q = q.Scopes(model.ScopeByType(v))
	}
	if v := strings.TrimSpace(c.Query("method")); v != "" {
		q = q.Where("transaction_method = ?", v)
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		q = q.Where("transaction_date >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		q = q.Where("transaction_date <= ?", v)
	}

	var all []model.Transaction
	if err := q.Session(&gorm.Session{}).
		Order("transaction_date DESC, transaction_created_at DESC").
		Find(&all).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	stats := service.ComputeStats(all)

	// Paginasi di memori; volume transaksi festival kecil.
	total := int64(len(all))
	start := p.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	page := all[start:end]

	return helper.Success(c, "OK", fiber.Map{
		"transactions": dto.FromModels(page),
		"stats":        stats,
		"pagination":   helper.BuildPagination(p, total, len(page)),
	})
}

/* ================= STATS ONLY ================= */

func (ctl *TransactionController) GetStats(c *fiber.Ctx) error {
	var all []model.Transaction
	if err := ctl.DB.Find(&all).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}
	return helper.Success(c, "OK", service.ComputeStats(all))
}

/* ================= DELETE ================= */

func (ctl *TransactionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID transaksi tidak valid")
	}
	res := ctl.DB.Delete(&model.Transaction{}, "transaction_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus transaksi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.Success(c, "Transaksi dihapus", nil)
}
