package handlers

import (
	"net/http"

	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, user)
}

// Admin echoes the identifier back if it matches, which is how the frontend
// probes for admin status.
func (h *AuthHandler) Admin(c *gin.Context) {
	id := c.Param("id")
	if !h.auth.IsAdmin(id) {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Error.", nil))
		return
	}
	utils.RespondOK(c, id)
}
