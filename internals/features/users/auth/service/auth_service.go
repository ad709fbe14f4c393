package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsfest_backend/internals/configs"
	authHelper "artsfest_backend/internals/features/users/auth/helper"
	authModel "artsfest_backend/internals/features/users/auth/model"
	authRepo "artsfest_backend/internals/features/users/auth/repository"
	userModel "artsfest_backend/internals/features/users/user/model"
	helper "artsfest_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   JWT claims builders
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if user.TeamID != nil {
		claims["team_id"] = user.TeamID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func buildUserResponse(user userModel.UserModel) fiber.Map {
	resp := fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	}
	if user.TeamID != nil {
		resp["team_id"] = user.TeamID
	}
	return resp
}

/* ==========================
   ISSUE TOKENS
========================== */

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: authRepo.ComputeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"user":         buildUserResponse(user),
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTL),
	})
}

/* ==========================
   REGISTER (admin membuat akun panitia)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := input.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", buildUserResponse(input))
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, input.Identifier)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Akun Google hanya bisa masuk jika sudah didaftarkan admin;
	// pendaftaran mandiri tidak dibuka.
	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		user, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err != nil {
			return helper.Error(c, fiber.StatusForbidden, "Akun belum terdaftar. Hubungi admin.")
		}
		// Tautkan google_id pada login pertama
		googleID := claimSet.Sub
		if uerr := db.Model(&userModel.UserModel{}).
			Where("id = ?", user.ID).
			Update("google_id", googleID).Error; uerr == nil {
			user.GoogleID = &googleID
		}
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&input)
		raw = strings.TrimSpace(input.RefreshToken)
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Token harus masih tercatat di DB (rotasi: revoke lalu terbitkan baru)
	hash := authRepo.ComputeRefreshHash(raw, refreshSecret)
	if _, err := authRepo.FindValidRefreshToken(db, hash); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}
	_ = authRepo.RevokeRefreshToken(db, hash)

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	refreshSecret, _ := getRefreshSecret()
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" && refreshSecret != "" {
		_ = authRepo.RevokeRefreshToken(db, authRepo.ComputeRefreshHash(rt, refreshSecret))
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helper.Success(c, "Logout successful", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Current password incorrect")
	}
	if len(input.NewPassword) < 8 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Password minimal 8 karakter")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// Paksa login ulang di perangkat lain
	_ = authRepo.RevokeAllUserRefreshTokens(db, userID)

	return helper.Success(c, "Password changed successfully", nil)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", buildUserResponse(*user))
}
