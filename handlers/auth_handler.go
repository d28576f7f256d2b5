package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/forms"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/session"
)

type AuthHandler struct {
	auth     *api.AuthService
	sessions *session.Manager
	toasts   *notifications.Feed
}

func NewAuthHandler(auth *api.AuthService, sessions *session.Manager, toasts *notifications.Feed) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, toasts: toasts}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form forms.SignInForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	resp, err := h.auth.Login(api.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		h.toasts.Error("Sign in failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	if err := h.sessions.SaveLogin(resp.Token, resp.User); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to persist session"})
	}

	return c.JSON(fiber.Map{"message": resp.Message, "user": resp.User})
}

// Register creates the account; the backend returns no token, so the user
// still has to sign in afterwards.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form forms.SignUpForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	resp, err := h.auth.Register(api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		h.toasts.Error("Registration failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": resp.Message, "user": resp.User})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(fiber.Map{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.auth.Me()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	// Keep the cached user in step with the backend.
	if err := h.sessions.SaveUser(*user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to persist session"})
	}
	return c.JSON(user)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var form forms.UpdateProfileForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	resp, err := h.auth.UpdateProfile(api.UpdateProfileRequest{Name: form.Name, Email: form.Email})
	if err != nil {
		h.toasts.Error("Profile update failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	if err := h.sessions.SaveUser(resp.User); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to persist session"})
	}
	return c.JSON(fiber.Map{"message": resp.Message, "user": resp.User})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var form forms.ChangePasswordForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.auth.ChangePassword(api.ChangePasswordRequest{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	}); err != nil {
		h.toasts.Error("Password change failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Password changed"})
}

// Session reports the local session record's consistency.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	valid, issues := h.sessions.Validate()
	record := h.sessions.Current()
	return c.JSON(fiber.Map{
		"isAuthenticated": h.sessions.IsAuthenticated(),
		"user":            record.User,
		"valid":           valid,
		"issues":          issues,
	})
}
