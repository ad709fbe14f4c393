package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "artsfest_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ========== Register (admin only) ==========
func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

// ========== Login ==========
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

// ========== Login via Google ==========
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ac.DB, c)
}

// ========== Refresh Token ==========
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ac.DB, c)
}

// ========== Logout ==========
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ac.DB, c)
}

// ========== Change Password ==========
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

// ========== Me ==========
func (ac *AuthController) Me(c *fiber.Ctx) error {
	return authService.Me(ac.DB, c)
}
