package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
)

// uploadFailureMarker is the literal the upload endpoint answers with on
// failure; the frontend passes it through as the image field, so article
// creation treats it as "no usable image".
const uploadFailureMarker = "Unable to upload that file"

type ArticleStore interface {
	List(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) (*models.Article, error)
	DeleteCascade(ctx context.Context, id int64) (*models.Article, error)
}

// FileRemover unlinks a stored upload by its public URL. *storage.Store
// satisfies it.
type FileRemover interface {
	Remove(fileURL string) error
}

type ArticleInput struct {
	ID           int64
	Image        string
	Title        string
	SecondTitle  string
	Text         string
	Added        time.Time
	Favorite     bool
	AdminID      string
	OldImagePath string
}

type ArticleService struct {
	articles ArticleStore
	files    FileRemover
	admin    AdminChecker
	log      *slog.Logger
}

func NewArticleService(articles ArticleStore, files FileRemover, admin AdminChecker, log *slog.Logger) *ArticleService {
	return &ArticleService{articles: articles, files: files, admin: admin, log: log}
}

func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to get articles.", nil)
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.CodeNotFound, "Unable to get that article.", nil)
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	if !s.admin.IsAdmin(input.AdminID) || input.Image == uploadFailureMarker {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Unable to add that article", nil)
	}

	article := &models.Article{
		Image:       input.Image,
		Title:       input.Title,
		SecondTitle: input.SecondTitle,
		Text:        input.Text,
		Added:       input.Added,
		Favorite:    input.Favorite,
	}
	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to add that article", nil)
	}
	return created, nil
}

// Update rewrites the article row and then, best-effort, unlinks the replaced
// image. The unlink sits outside any transactional guarantee: failure is
// logged and the updated row is returned regardless.
func (s *ArticleService) Update(ctx context.Context, input ArticleInput) (*models.Article, error) {
	if !s.admin.IsAdmin(input.AdminID) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Unable to update that file", nil)
	}

	article := &models.Article{
		ID:          input.ID,
		Image:       input.Image,
		Title:       input.Title,
		SecondTitle: input.SecondTitle,
		Text:        input.Text,
		Favorite:    input.Favorite,
	}
	updated, err := s.articles.Update(ctx, article)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to get that article.", nil)
	}

	s.removeOldImage(input.OldImagePath)
	return updated, nil
}

// Delete cascades responses and comments away inside one transaction and then
// unlinks the article's image outside it.
func (s *ArticleService) Delete(ctx context.Context, id int64, adminID, oldImagePath string) (*models.Article, error) {
	article, err := s.deleteCascade(ctx, id, adminID)
	if err != nil {
		return nil, err
	}
	s.removeOldImage(oldImagePath)
	return article, nil
}

// DeleteSimple is the same cascade with no file cleanup.
func (s *ArticleService) DeleteSimple(ctx context.Context, id int64, adminID string) (*models.Article, error) {
	return s.deleteCascade(ctx, id, adminID)
}

func (s *ArticleService) deleteCascade(ctx context.Context, id int64, adminID string) (*models.Article, error) {
	if !s.admin.IsAdmin(adminID) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Article could not be deleted.", nil)
	}
	article, err := s.articles.DeleteCascade(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Article could not be deleted.", nil)
	}
	return article, nil
}

func (s *ArticleService) removeOldImage(fileURL string) {
	if fileURL == "" {
		return
	}
	if err := s.files.Remove(fileURL); err != nil {
		s.log.Warn("could not delete image file", "url", fileURL, "error", err)
		return
	}
	s.log.Info("image file removed", "url", fileURL)
}
