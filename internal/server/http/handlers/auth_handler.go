package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/dto"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/middleware"
)

// AuthHandler processes registration, login and profile lookups.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	account, token, err := h.facade.Register(c.Request.Context(), model.Registration{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			abortWithError(c, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithError(c, http.StatusConflict, "username already taken")
		default:
			h.logger.Error("register account", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, profileResponse(account))
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid login payload")
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			abortWithError(c, http.StatusUnauthorized, "invalid username or password")
		default:
			h.logger.Error("authenticate", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	account, err := h.facade.Profile(c.Request.Context(), CurrentAccountID(c))
	if err != nil {
		// The token outlived its account.
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusUnauthorized, "account not found")
			return
		}
		h.logger.Error("load profile", slog.String("error", err.Error()))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, profileResponse(account))
}

func profileResponse(a *model.Account) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
