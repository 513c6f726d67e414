package controllers

import (
	"plot-sales-backend/config"
	"plot-sales-backend/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthController is the auth gate: any non-empty email/password pair opens a
// session. No token is issued and no backend call is made in current scope.
type AuthController struct {
	SessionManager *session.Manager
	loginLimiter   *rate.Limiter
}

func NewAuthController(sessionManager *session.Manager) *AuthController {
	return &AuthController{
		SessionManager: sessionManager,
		// Lenient gate, but bursts are still throttled
		loginLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// LoginController handles the sign-in form submission.
func (ac *AuthController) LoginController(c *fiber.Ctx) error {
	if !ac.loginLimiter.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"message": "Too many sign-in attempts, try again shortly",
		})
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid login payload",
			"error":   err.Error(),
		})
	}

	if !ac.SessionManager.Login(req.Email, req.Password) {
		// Empty fields are rejected locally; the state machine is untouched
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Sign-in ignored: email and password are required",
			"data":    ac.SessionManager.Snapshot(),
		})
	}

	config.Logger.Info("Admin session opened", zap.String("email", req.Email))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Signed in successfully",
		"data":    ac.SessionManager.Snapshot(),
	})
}

// LogoutController resets the whole session state.
func (ac *AuthController) LogoutController(c *fiber.Ctx) error {
	ac.SessionManager.Logout()
	config.Logger.Info("Admin session closed")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Signed out successfully",
		"data":    ac.SessionManager.Snapshot(),
	})
}
