package handlers

import (
	"errors"
	"net/http"

	"jeevanrakshak/middleware"
	"jeevanrakshak/services/user"
	"jeevanrakshak/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

type idTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// StartSessionHandler handles POST /api/session.
func (h *UserHandler) StartSessionHandler(c *gin.Context) {
	var req idTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "idToken is required", nil)
		return
	}

	resp, err := h.UserService.StartSession(c.Request.Context(), req.IDToken)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case user.IsInvalidSession(err):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, user.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not registered", "code": "profileRequired"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Unable to sign in", err)
	}
}

// EndSessionHandler handles DELETE /api/session.
func (h *UserHandler) EndSessionHandler(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", nil)
		return
	}
	if err := h.UserService.EndSession(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Unable to sign out", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

type registerProfileRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	user.RegisterRequest
}

// RegisterProfileHandler handles POST /api/users/profile.
func (h *UserHandler) RegisterProfileHandler(c *gin.Context) {
	var req registerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "idToken is required", nil)
		return
	}

	profile, err := h.UserService.RegisterProfile(c.Request.Context(), req.IDToken, req.RegisterRequest)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, profile)
	case user.IsClientError(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
	case user.IsInvalidSession(err):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, user.ErrProfileExists):
		utils.JSONError(c, http.StatusConflict, err.Error(), nil)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Unable to register profile", err)
	}
}

// GetMyProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetMyProfileHandler(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", nil)
		return
	}
	profile, err := h.UserService.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Unable to load profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
