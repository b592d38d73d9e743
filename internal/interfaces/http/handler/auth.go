package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nivas/backend/internal/application/identity"
	"github.com/nivas/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication and self-service profile requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the account view
type LoginResponse struct {
	Token     string               `json:"token"`
	TokenType string               `json:"token_type"`
	ExpiresAt time.Time            `json:"expires_at"`
	Account   identity.AccountInfo `json:"account"`
}

// Login authenticates an account and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token:     result.Token,
		TokenType: result.TokenType,
		ExpiresAt: result.ExpiresAt,
		Account:   result.Account,
	})
}

// Logout revokes the current session token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	accountID, err := claims.AccountUUID()
	if err != nil {
		h.BadRequest(c, "Invalid account ID in token")
		return
	}

	err = h.authService.Logout(c.Request.Context(), identity.LogoutInput{
		TokenJTI:  claims.ID,
		TokenTTL:  claims.RemainingTTL(),
		AccountID: accountID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out successfully"})
}

// Me returns the authenticated account
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	account, err := h.authService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, account)
}

// UpdateProfileRequest carries self-service profile changes; absent fields
// are left untouched
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	NewPassword *string `json:"new_password"`
}

// UpdateProfile applies self-service changes to the authenticated account
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.authService.UpdateProfile(c.Request.Context(), identity.UpdateProfileInput{
		AccountID:   accountID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, account)
}
