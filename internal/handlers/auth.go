package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login routes
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	TokenTTL  time.Duration
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the body returned by register and login.
type UserResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create an account and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsInput true "Email and password"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}
	if body.Email == "" || body.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.RegisterUser(h.DB, body.Email, body.Password)
	if err != nil {
		if err == services.ErrConflict {
			return utils.ErrorResponse(c, "Email is already taken", fiber.StatusBadRequest, "auth.register.conflict")
		}
		return serviceErrorResponse(c, err, "auth.register")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, h.JWTSecret, h.TokenTTL)
	if err != nil {
		return serviceErrorResponse(c, err, "auth.register.token")
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Email: user.Email,
		Token: token,
	})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsInput true "Email and password"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsInput
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}
	if body.Email == "" || body.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.AuthenticateUser(h.DB, body.Email, body.Password)
	if err != nil {
		return serviceErrorResponse(c, err, "auth.login")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, h.JWTSecret, h.TokenTTL)
	if err != nil {
		return serviceErrorResponse(c, err, "auth.login.token")
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Email: user.Email,
		Token: token,
	})
}
