package api

import "github.com/wiradarma21/travel_booking/models"

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token; registration does not.
type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type UpdateProfileResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.client.doJSON("POST", "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Register(req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := s.client.doJSON("POST", "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Me() (*models.User, error) {
	var user models.User
	if err := s.client.doJSON("GET", "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(req UpdateProfileRequest) (*UpdateProfileResponse, error) {
	var resp UpdateProfileResponse
	if err := s.client.doJSON("PUT", "/api/auth/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) ChangePassword(req ChangePasswordRequest) error {
	return s.client.doJSON("POST", "/api/auth/change-password", req, nil)
}
