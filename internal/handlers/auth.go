package handlers

import (
	"errors"
	"net/http"

	"MedDesk/internal/auth"
	"MedDesk/internal/dto"
	"MedDesk/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and token issuance.
type AuthHandler struct {
	accounts *service.AccountService
	tokens   *auth.TokenManager
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(accounts *service.AccountService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// Register godoc
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Candidate account"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fe := req.Validate(); !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	account, fe, err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		internalError(c, err)
		return
	}
	if !fe.Empty() {
		c.JSON(http.StatusBadRequest, fe)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// Token godoc
// @Summary      Issue a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TokenRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := h.accounts.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		internalError(c, err)
		return
	}
	access, refresh, err := h.tokens.IssuePair(account)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Access: access, Refresh: refresh})
}

// TokenRefresh godoc
// @Summary      Refresh an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RefreshRequest  true  "Refresh token"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /token/refresh [post]
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	access, err := h.tokens.Refresh(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Access: access})
}
