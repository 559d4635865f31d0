package handlers

import (
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact *services.ContactService
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	User    string `json:"user"`
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) SendMail(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}
	if utils.AnyInvalidField(req.Name, req.Email, req.Message) || req.User == "" {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	utils.RespondOK(c, h.contact.Send(req.Name, req.Email, req.Message))
}
