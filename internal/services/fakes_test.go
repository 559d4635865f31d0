package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/mail"
	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/repo"
)

type fakeUserStore struct {
	users  map[string]*models.User
	creds  map[string]*models.Credential
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users: make(map[string]*models.User),
		creds: make(map[string]*models.Credential),
	}
}

func (f *fakeUserStore) CreateWithCredential(_ context.Context, email, name, passwordHash string) (*models.User, error) {
	if _, ok := f.creds[email]; ok {
		return nil, fmt.Errorf("insert login: %w", repo.ErrDuplicate)
	}
	f.nextID++
	user := &models.User{ID: f.nextID, Email: email, Name: name, Joined: time.Now()}
	f.users[email] = user
	f.creds[email] = &models.Credential{Email: email, PasswordHash: passwordHash}
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", repo.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserStore) UserExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) GetCredentialByEmail(_ context.Context, email string) (*models.Credential, error) {
	cred, ok := f.creds[email]
	if !ok {
		return nil, fmt.Errorf("get credential by email: %w", repo.ErrNotFound)
	}
	return cred, nil
}

func (f *fakeUserStore) GetCredentialByResetToken(_ context.Context, token string) (*models.Credential, error) {
	for _, cred := range f.creds {
		if cred.ResetToken != nil && *cred.ResetToken == token {
			return cred, nil
		}
	}
	return nil, fmt.Errorf("get credential by reset token: %w", repo.ErrNotFound)
}

func (f *fakeUserStore) SetResetToken(_ context.Context, email, token string, expires time.Time) error {
	cred, ok := f.creds[email]
	if !ok {
		return fmt.Errorf("set reset token: %w", repo.ErrNotFound)
	}
	cred.ResetToken = &token
	cred.ResetExpires = &expires
	return nil
}

func (f *fakeUserStore) UpdatePasswordByResetToken(_ context.Context, token, passwordHash string) (string, error) {
	for _, cred := range f.creds {
		if cred.ResetToken != nil && *cred.ResetToken == token {
			cred.PasswordHash = passwordHash
			cred.ResetToken = nil
			cred.ResetExpires = nil
			return cred.Email, nil
		}
	}
	return "", fmt.Errorf("update password by reset token: %w", repo.ErrNotFound)
}

type fakeArticleStore struct {
	articles    map[int64]*models.Article
	nextID      int64
	createCalls int
	deleteCalls int
	failDelete  bool
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{articles: make(map[int64]*models.Article)}
}

func (f *fakeArticleStore) List(context.Context) ([]models.Article, error) {
	var out []models.Article
	for id := f.nextID; id >= 1; id-- {
		if a, ok := f.articles[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArticleStore) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, fmt.Errorf("get article: %w", repo.ErrNotFound)
	}
	return a, nil
}

func (f *fakeArticleStore) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	f.createCalls++
	f.nextID++
	a.ID = f.nextID
	f.articles[a.ID] = a
	return a, nil
}

func (f *fakeArticleStore) Update(_ context.Context, a *models.Article) (*models.Article, error) {
	existing, ok := f.articles[a.ID]
	if !ok {
		return nil, fmt.Errorf("update article: %w", repo.ErrNotFound)
	}
	a.Added = existing.Added
	f.articles[a.ID] = a
	return a, nil
}

func (f *fakeArticleStore) DeleteCascade(_ context.Context, id int64) (*models.Article, error) {
	f.deleteCalls++
	if f.failDelete {
		return nil, fmt.Errorf("delete article: boom")
	}
	a, ok := f.articles[id]
	if !ok {
		return nil, fmt.Errorf("delete article: %w", repo.ErrNotFound)
	}
	delete(f.articles, id)
	return a, nil
}

type fakeCommentStore struct {
	comments    map[int64]*models.Comment
	responses   map[int64]*models.CommentResponse
	nextID      int64
	deleteCalls int
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments:  make(map[int64]*models.Comment),
		responses: make(map[int64]*models.CommentResponse),
	}
}

func (f *fakeCommentStore) ListByArticle(_ context.Context, articleID int64) ([]models.Comment, error) {
	var out []models.Comment
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.comments[id]; ok && c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	f.nextID++
	c.ID = f.nextID
	f.comments[c.ID] = c
	return c, nil
}

func (f *fakeCommentStore) DeleteCascade(_ context.Context, commentID int64) (*models.Comment, error) {
	f.deleteCalls++
	c, ok := f.comments[commentID]
	if !ok {
		return nil, fmt.Errorf("delete comment: %w", repo.ErrNotFound)
	}
	for id, r := range f.responses {
		if r.CommentID == commentID {
			delete(f.responses, id)
		}
	}
	delete(f.comments, commentID)
	return c, nil
}

func (f *fakeCommentStore) ListResponsesByArticle(_ context.Context, articleID int64) ([]models.CommentResponse, error) {
	var out []models.CommentResponse
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.responses[id]; ok && r.ArticleID == articleID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) CreateResponse(_ context.Context, cr *models.CommentResponse) (*models.CommentResponse, error) {
	f.nextID++
	cr.ID = f.nextID
	f.responses[cr.ID] = cr
	return cr, nil
}

func (f *fakeCommentStore) DeleteResponse(_ context.Context, respID int64) (*models.CommentResponse, error) {
	f.deleteCalls++
	r, ok := f.responses[respID]
	if !ok {
		return nil, fmt.Errorf("delete comment response: %w", repo.ErrNotFound)
	}
	delete(f.responses, respID)
	return r, nil
}

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeRemover struct {
	removed []string
	err     error
}

func (f *fakeRemover) Remove(fileURL string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, fileURL)
	return nil
}
