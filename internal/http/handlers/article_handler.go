package handlers

import (
	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/services"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles *services.ArticleService
}

type ArticleRequest struct {
	ID           int64  `json:"m_article_id"`
	Image        string `json:"image"`
	Title        string `json:"title"`
	SecondTitle  string `json:"secondtitle"`
	Text         string `json:"text"`
	Added        string `json:"added"`
	Favorite     bool   `json:"favorite"`
	User         string `json:"user"`
	OldImagePath string `json:"oldImagePath"`
}

// DeleteArticleRequest mirrors the legacy API: the id rides in the body even
// though the route carries a path segment.
type DeleteArticleRequest struct {
	ID           int64  `json:"id"`
	User         string `json:"user"`
	OldImagePath string `json:"oldImagePath"`
}

func NewArticleHandler(articles *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	utils.RespondOK(c, articles)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.RespondValidationError(c, utils.MsgIncorrectInfo)
		return
	}

	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	article, err := h.articles.Create(c.Request.Context(), services.ArticleInput{
		Image:       req.Image,
		Title:       req.Title,
		SecondTitle: req.SecondTitle,
		Text:        req.Text,
		Added:       parseAdded(req.Added),
		Favorite:    req.Favorite,
		AdminID:     req.User,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.MsgIncorrectForm)
		return
	}

	article, err := h.articles.Update(c.Request.Context(), services.ArticleInput{
		ID:           req.ID,
		Image:        req.Image,
		Title:        req.Title,
		SecondTitle:  req.SecondTitle,
		Text:         req.Text,
		Favorite:     req.Favorite,
		AdminID:      req.User,
		OldImagePath: req.OldImagePath,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	req, ok := h.bindDelete(c)
	if !ok {
		return
	}

	article, err := h.articles.Delete(c.Request.Context(), req.ID, req.User, req.OldImagePath)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, article)
}

func (h *ArticleHandler) DeleteSimple(c *gin.Context) {
	req, ok := h.bindDelete(c)
	if !ok {
		return
	}

	article, err := h.articles.DeleteSimple(c.Request.Context(), req.ID, req.User)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, article)
}

func (h *ArticleHandler) bindDelete(c *gin.Context) (*DeleteArticleRequest, bool) {
	var req DeleteArticleRequest
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
