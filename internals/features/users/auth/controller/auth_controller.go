package controller

import (
	"log"
	"strings"
	"time"

	"github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"panditku_backend/internals/configs"
	"panditku_backend/internals/features/users/auth/dto"
	authModel "panditku_backend/internals/features/users/auth/model"
	"panditku_backend/internals/features/users/auth/service"
	userModel "panditku_backend/internals/features/users/user/model"
	helper "panditku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 👤 Register (owner only)
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: hash,
		Role:     body.Role,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered", dto.ToAuthUserDTO(user))
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email or password incorrect")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if !service.CheckPassword(user.Password, body.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email or password incorrect")
	}

	return ctrl.issueSession(c, &user)
}

// =============================
// 🔑 Login with Google
// =============================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token invalid")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token unreadable")
	}

	// Admin accounts are provisioned ahead of time; Google login only
	// attaches to an existing user.
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "LOWER(email) = ?", strings.ToLower(claims.Email)).Error; err != nil {
		return helper.Error(c, fiber.StatusForbidden, "No account for this Google identity")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if user.GoogleID == nil || *user.GoogleID == "" {
		sub := claims.Sub
		if err := ctrl.DB.Model(&user).Update("google_id", sub).Error; err != nil {
			log.Printf("[WARNING] failed to persist google_id for %s: %v", user.Email, err)
		}
	}

	return ctrl.issueSession(c, &user)
}

// =============================
// ♻️ Refresh
// =============================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies("refresh_token"))
	if token == "" {
		var body dto.RefreshRequest
		if err := c.BodyParser(&body); err == nil {
			token = strings.TrimSpace(body.RefreshToken)
		}
	}
	if token == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	userID, err := service.ValidateRefreshToken(ctrl.DB, token)
	if err != nil {
		clearRefreshCookie(c)
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account is deactivated")
	}

	access, refresh, err := service.RotateRefreshToken(ctrl.DB, c, token, &user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to rotate session")
	}

	setRefreshCookie(c, refresh)
	return helper.Success(c, "Session refreshed", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
		User:         dto.ToAuthUserDTO(user),
	})
}

// =============================
// 🚪 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	// blacklist the presented access token until it would have expired
	if h := strings.TrimSpace(c.Get("Authorization")); strings.HasPrefix(h, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		entry := authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: time.Now().Add(24 * time.Hour),
		}
		if err := ctrl.DB.Create(&entry).Error; err != nil && !helper.IsUniqueViolation(err) {
			log.Printf("[WARNING] failed to blacklist token: %v", err)
		}
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		if err := service.RevokeUserSessions(ctrl.DB, userID); err != nil {
			log.Printf("[WARNING] failed to revoke sessions: %v", err)
		}
	}

	clearRefreshCookie(c)
	return helper.Success(c, "Logged out", nil)
}

// =============================
// 🙋 Me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "OK", dto.ToAuthUserDTO(user))
}

// ============================================================

func (ctrl *AuthController) issueSession(c *fiber.Ctx, user *userModel.UserModel) error {
	access, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, c, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	setRefreshCookie(c, refresh)
	return helper.Success(c, "Login success", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
		User:         dto.ToAuthUserDTO(*user),
	})
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/auth",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/auth",
		Expires:  time.Now().Add(-time.Hour),
	})
}
