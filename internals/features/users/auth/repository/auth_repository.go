package repository

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "artsfest_backend/internals/features/users/auth/model"
	userModel "artsfest_backend/internals/features/users/user/model"
)

/* ==========================
   Users
========================== */

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "google_id = ?", googleID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

/* ==========================
   Refresh tokens
========================== */

func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

// FindValidRefreshToken mencari token yang belum revoked dan belum expired.
func FindValidRefreshToken(db *gorm.DB, tokenHash []byte) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, time.Now().UTC()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, tokenHash []byte) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error
}

func RevokeAllUserRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}
