package handlers

import (
	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

type CommentRequest struct {
	ArticleID int64  `json:"article_id"`
	CommentID int64  `json:"comment_id"`
	UserID    int64  `json:"user_id"`
	Comment   string `json:"comment"`
	Added     string `json:"added"`
}

type DeleteCommentRequest struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	comments, err := h.comments.ListByArticle(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	utils.RespondOK(c, comments)
}

func (h *CommentHandler) SendComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), services.CommentInput{
		ArticleID: req.ArticleID,
		UserID:    req.UserID,
		Comment:   req.Comment,
		Added:     parseAdded(req.Added),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, comment)
}

func (h *CommentHandler) ListResponses(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	responses, err := h.comments.ListResponses(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if responses == nil {
		responses = []models.CommentResponse{}
	}
	utils.RespondOK(c, responses)
}

func (h *CommentHandler) SendResponse(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	resp, err := h.comments.CreateResponse(c.Request.Context(), services.CommentInput{
		ArticleID: req.ArticleID,
		CommentID: req.CommentID,
		UserID:    req.UserID,
		Comment:   req.Comment,
		Added:     parseAdded(req.Added),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	req, ok := h.bindDelete(c)
	if !ok {
		return
	}

	comment, err := h.comments.DeleteComment(c.Request.Context(), req.ID, req.User)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, comment)
}

func (h *CommentHandler) DeleteResponse(c *gin.Context) {
	req, ok := h.bindDelete(c)
	if !ok {
		return
	}

	resp, err := h.comments.DeleteResponse(c.Request.Context(), req.ID, req.User)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, resp)
}

func (h *CommentHandler) bindDelete(c *gin.Context) (*DeleteCommentRequest, bool) {
	var req DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return nil, false
	}
	if req.ID == 0 {
		if id, ok := parseIDParam(c); ok {
			req.ID = id
		}
	}
	return &req, true
}
