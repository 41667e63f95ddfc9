package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adviserDTO "spis_backend/internals/features/academics/advisers/dto"
	adminModel "spis_backend/internals/features/academics/advisers/model"
	authService "spis_backend/internals/features/users/auth/service"
	helper "spis_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB      *gorm.DB
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: authService.NewAuthService(db)}
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginGoogle exchanges a Google ID token for our session tokens.
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, tokens, err := ctl.Service.LoginGoogle(req.IDToken)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidGoogleToken) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login failed")
	}

	setAuthCookies(c, tokens)
	return helper.JsonOK(c, "login successful", fiber.Map{
		"admin":  adviserDTO.FromAdminModel(admin),
		"tokens": tokens,
	})
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, tokens, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	setAuthCookies(c, tokens)
	return helper.JsonOK(c, "login successful", fiber.Map{
		"admin":  adviserDTO.FromAdminModel(admin),
		"tokens": tokens,
	})
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, err := ctl.Service.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "account created", adviserDTO.FromAdminModel(admin))
}

// Refresh accepts the refresh token from the body or cookie.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	_ = c.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies("refresh_token")
	}
	if req.RefreshToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	admin, tokens, err := ctl.Service.Refresh(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	setAuthCookies(c, tokens)
	return helper.JsonOK(c, "token refreshed", fiber.Map{
		"admin":  adviserDTO.FromAdminModel(admin),
		"tokens": tokens,
	})
}

// Me returns the account behind the current access token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	adminID, ok := c.Locals("admin_id").(int)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin adminModel.AdminModel
	if err := ctl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	return helper.JsonOK(c, "", adviserDTO.FromAdminModel(&admin))
}

// Logout clears the auth cookies. Tokens themselves stay valid until expiry.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	expire := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expire, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expire, HTTPOnly: true})
	return helper.JsonOK(c, "logged out", nil)
}

func setAuthCookies(c *fiber.Ctx, tokens *authService.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Expires:  time.Now().Add(15 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
