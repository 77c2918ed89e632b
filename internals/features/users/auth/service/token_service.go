// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/configs"
	authModel "panditku_backend/internals/features/users/auth/model"
	userModel "panditku_backend/internals/features/users/user/model"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// HMACKeyfunc returns a jwt.Keyfunc that releases the secret only for
// HMAC-signed tokens. A token carrying any other alg (RS256, none, ...)
// is rejected before signature verification.
func HMACKeyfunc(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}
}

// ========================== ACCESS TOKEN ==========================

func IssueAccessToken(u *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// ========================== REFRESH TOKEN ==========================

// IssueRefreshToken signs a refresh JWT and stores its HMAC hash so the
// session survives restarts but the plaintext never touches the DB.
func IssueRefreshToken(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", fmt.Errorf("JWT_REFRESH_SECRET not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	row := authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: ComputeRefreshHash(signed),
		ExpiresAt: now.Add(refreshTokenTTL),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// ComputeRefreshHash derives the stored lookup hash (HMAC-SHA256 keyed by
// the refresh secret).
func ComputeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// ValidateRefreshToken parses the refresh JWT and confirms its hash is
// still stored. An invalid or unknown token clears any stored row for
// that token so the client starts from a clean session instead of
// retrying a dead one.
func ValidateRefreshToken(db *gorm.DB, token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, HMACKeyfunc(configs.JWTRefreshSecret))
	if err != nil || !parsed.Valid {
		// proactive cleanup: expired/broken token must not linger
		db.Where("token_hash = ?", ComputeRefreshHash(token)).Delete(&authModel.RefreshToken{})
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid or expired")
	}
	claims, _ := parsed.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var row authModel.RefreshToken
	if err := db.Where("token_hash = ? AND revoked_at IS NULL", ComputeRefreshHash(token)).First(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token not recognized")
	}
	if time.Now().After(row.ExpiresAt) {
		db.Delete(&row)
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token expired")
	}
	return userID, nil
}

// RotateRefreshToken deletes the old stored hash and issues a new pair.
func RotateRefreshToken(db *gorm.DB, c *fiber.Ctx, old string, u *userModel.UserModel) (access, refresh string, err error) {
	if err := db.Where("token_hash = ?", ComputeRefreshHash(old)).Delete(&authModel.RefreshToken{}).Error; err != nil {
		return "", "", err
	}
	access, err = IssueAccessToken(u)
	if err != nil {
		return "", "", err
	}
	refresh, err = IssueRefreshToken(db, c, u)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// RevokeUserSessions drops every stored refresh token for a user (logout
// everywhere).
func RevokeUserSessions(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error
}
