// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stepwise_backend/internals/configs"
	userModel "stepwise_backend/internals/features/users/user/model"
	helper "stepwise_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validator: v}
}

type loginDTO struct {
	Login    string `json:"login"    validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginResponseDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	UserRole    string    `json:"user_role"`
}

/* ============================================
   POST /api/auth/login
============================================ */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p loginDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p.Login = strings.TrimSpace(p.Login)

	var user userModel.UserModel
	if err := ctl.DB.
		Where("user_name = ? OR user_email = ?", p.Login, strings.ToLower(p.Login)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(p.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	exp := time.Now().Add(12 * time.Hour)
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"sub":     user.UserID.String(),
		"role":    user.UserRole,
		"iat":     time.Now().Unix(),
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[AUTH] token sign failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Logged in", loginResponseDTO{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		UserID:      user.UserID.String(),
		UserRole:    user.UserRole,
	})
}

/* ============================================
   POST /api/auth/logout
============================================ */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}
