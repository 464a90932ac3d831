package handlers

import (
	"net/http"

	"fitness-community-backend/internal/auth"
	"fitness-community-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CodeHandler handles HTTP requests for activation codes and the
// forgot-password flow.
type CodeHandler struct {
	service service.CodeServiceInterface
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(service service.CodeServiceInterface) *CodeHandler {
	return &CodeHandler{service: service}
}

// CreateActivationCode issues an activation code for an invited email
// @Summary Issue an activation code
// @Description Issue an activation code for an invited email address and send the invite email
// @Tags codes
// @Accept json
// @Produce json
// @Param code body service.CreateActivationCodeRequest true "Invite data"
// @Success 201 {object} service.ActivationCodeResponse "Successfully issued code"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Email service unavailable"
// @Security BearerAuth
// @Router /v1/activation-codes [post]
func (h *CodeHandler) CreateActivationCode(c *gin.Context) {
	var req service.CreateActivationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "added": false, "error": err.Error()})
		return
	}

	actor, _ := auth.GetUsername(c)
	code, err := h.service.CreateActivationCode(c.Request.Context(), &req, actor)
	if err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"self": self(c), "added": true, "activation_code": code})
}

// GetActivationCode looks up an activation code
// @Summary Look up an activation code
// @Description Look up an activation code and verify it has not expired
// @Tags codes
// @Produce json
// @Param code path string true "Activation code"
// @Success 200 {object} service.ActivationCodeResponse "Code is valid"
// @Failure 400 {object} ErrorResponse "Code has expired"
// @Failure 404 {object} ErrorResponse "Code not found"
// @Router /v1/activation-codes/{code} [get]
func (h *CodeHandler) GetActivationCode(c *gin.Context) {
	code, err := h.service.GetActivationCode(c.Param("code"))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"self": self(c), "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, code)
}

// DeleteActivationCode revokes an activation code
// @Summary Revoke an activation code
// @Description Revoke an unused activation code
// @Tags codes
// @Produce json
// @Param code path string true "Activation code"
// @Success 200 {object} map[string]interface{} "Successfully revoked code"
// @Failure 404 {object} ErrorResponse "Code not found"
// @Security BearerAuth
// @Router /v1/activation-codes/{code} [delete]
func (h *CodeHandler) DeleteActivationCode(c *gin.Context) {
	actor, _ := auth.GetUsername(c)
	if err := h.service.DeleteActivationCode(c.Param("code"), actor); err != nil {
		fail(c, err, "deleted")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "deleted": true})
}

// RequestPasswordReset issues a forgot-password code and emails it
// @Summary Request a password reset
// @Description Issue a forgot-password code for a username or email and send the reset email
// @Tags codes
// @Produce json
// @Param identifier path string true "Username or email address"
// @Success 200 {object} map[string]interface{} "Reset email sent"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 503 {object} ErrorResponse "Email service unavailable"
// @Router /v1/forgot-password/{identifier} [post]
func (h *CodeHandler) RequestPasswordReset(c *gin.Context) {
	if err := h.service.RequestPasswordReset(c.Request.Context(), c.Param("identifier")); err != nil {
		fail(c, err, "added")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "added": true})
}

// ResetPassword redeems a forgot-password code
// @Summary Reset a password
// @Description Redeem a forgot-password code and set a new password
// @Tags codes
// @Accept json
// @Produce json
// @Param body body service.ResetPasswordRequest true "Reset data"
// @Success 200 {object} map[string]interface{} "Password reset"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Router /v1/forgot-password/reset [put]
func (h *CodeHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"self": self(c), "updated": false, "error": err.Error()})
		return
	}

	if err := h.service.ResetPassword(&req); err != nil {
		fail(c, err, "updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"self": self(c), "updated": true})
}
