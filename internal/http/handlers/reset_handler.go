package handlers

import (
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ResetHandler struct {
	reset *services.ResetService
}

type ForgotRequest struct {
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	ResetToken string `json:"resetpasstoken"`
	Password   string `json:"password"`
}

func NewResetHandler(reset *services.ResetService) *ResetHandler {
	return &ResetHandler{reset: reset}
}

func (h *ResetHandler) Forgot(c *gin.Context) {
	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	msg, err := h.reset.Forgot(c.Request.Context(), req.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, msg)
}

// Lookup answers with {email} for a live token, or with the expiry/invalid
// literal otherwise, always as a 200.
func (h *ResetHandler) Lookup(c *gin.Context) {
	result, err := h.reset.Lookup(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result.Email != "" {
		utils.RespondOK(c, gin.H{"email": result.Email})
		return
	}
	utils.RespondOK(c, result.Message)
}

func (h *ResetHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	email, err := h.reset.UpdatePassword(c.Request.Context(), req.ResetToken, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"email": email})
}
