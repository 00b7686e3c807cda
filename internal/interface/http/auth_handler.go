package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"authapi/internal/application"
	pginfra "authapi/internal/infrastructure/postgres"
	"authapi/internal/interface/middleware"
	"authapi/pkg/helpers"
	"authapi/pkg/response"
	"authapi/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
	Audit  *pginfra.AuditLogger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, audit *pginfra.AuditLogger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Audit: audit}
}

// credentialsRequest is shared by register and login. A missing username
// and a missing password yield one combined message, no per-field
// granularity.
type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func (h *AuthHandler) audit(c *gin.Context, userID, username, action string, metadata map[string]any) {
	h.Audit.Record(c.Request.Context(), pginfra.AuditEntry{
		UserID:    userID,
		Username:  username,
		Action:    action,
		IP:        clientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Metadata:  metadata,
	})
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithFields(logrus.Fields{"details": validation.ToDetails(err)}).Debug("register payload rejected")
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	id, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "username already exists")
			return
		}
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "error registering user")
		return
	}

	h.audit(c, id, req.Username, "register", nil)
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully", "userId": id})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithFields(logrus.Fields{"details": validation.ToDetails(err)}).Debug("login payload rejected")
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Same status and message whether the user is unknown or the
			// password is wrong.
			h.audit(c, "", req.Username, "login_denied", nil)
			response.Error(c, http.StatusBadRequest, "invalid username or password")
			return
		}
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "error logging in")
		return
	}

	h.audit(c, "", req.Username, "login", nil)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfile GET /auth/profile (auth required)
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	p, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			// Valid token, but the subject has been deleted since issuance.
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		helpers.LogError(h.Logger, "get profile failed", err, logrus.Fields{"user_id": uid})
		response.Error(c, http.StatusInternalServerError, "error retrieving profile")
		return
	}

	c.JSON(http.StatusOK, p)
}
