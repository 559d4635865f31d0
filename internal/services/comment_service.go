package services

import (
	"context"
	"net/http"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
)

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	DeleteCascade(ctx context.Context, commentID int64) (*models.Comment, error)
	ListResponsesByArticle(ctx context.Context, articleID int64) ([]models.CommentResponse, error)
	CreateResponse(ctx context.Context, cr *models.CommentResponse) (*models.CommentResponse, error)
	DeleteResponse(ctx context.Context, respID int64) (*models.CommentResponse, error)
}

type CommentInput struct {
	ArticleID int64
	CommentID int64
	UserID    int64
	Comment   string
	Added     time.Time
	AdminID   string
}

type CommentService struct {
	comments CommentStore
	admin    AdminChecker
}

func NewCommentService(comments CommentStore, admin AdminChecker) *CommentService {
	return &CommentService{comments: comments, admin: admin}
}

func (s *CommentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to get comments.", nil)
	}
	return comments, nil
}

func (s *CommentService) Create(ctx context.Context, input CommentInput) (*models.Comment, error) {
	if input.UserID == 0 || utils.InvalidField(input.Comment) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectForm, nil)
	}

	comment := &models.Comment{
		ArticleID: input.ArticleID,
		UserID:    input.UserID,
		Comment:   input.Comment,
		Added:     input.Added,
	}
	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to add that comment.", nil)
	}
	return created, nil
}

// DeleteComment removes the comment and its responses in one transaction.
func (s *CommentService) DeleteComment(ctx context.Context, commentID int64, adminID string) (*models.Comment, error) {
	if !s.admin.IsAdmin(adminID) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Comment could not be deleted.", nil)
	}
	comment, err := s.comments.DeleteCascade(ctx, commentID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Comment could not be deleted.", nil)
	}
	return comment, nil
}

func (s *CommentService) ListResponses(ctx context.Context, articleID int64) ([]models.CommentResponse, error) {
	responses, err := s.comments.ListResponsesByArticle(ctx, articleID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to get comments.", nil)
	}
	return responses, nil
}

func (s *CommentService) CreateResponse(ctx context.Context, input CommentInput) (*models.CommentResponse, error) {
	if input.UserID == 0 || utils.InvalidField(input.Comment) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectForm, nil)
	}

	resp := &models.CommentResponse{
		ArticleID: input.ArticleID,
		CommentID: input.CommentID,
		UserID:    input.UserID,
		Resp:      input.Comment,
		Added:     input.Added,
	}
	created, err := s.comments.CreateResponse(ctx, resp)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to add that comment.", nil)
	}
	return created, nil
}

func (s *CommentService) DeleteResponse(ctx context.Context, respID int64, adminID string) (*models.CommentResponse, error) {
	if !s.admin.IsAdmin(adminID) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Unable to delete that response.", nil)
	}
	resp, err := s.comments.DeleteResponse(ctx, respID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to delete that response.", nil)
	}
	return resp, nil
}
