package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewArticleRepo(pool *pgxpool.Pool, timeout time.Duration) *ArticleRepo {
	return &ArticleRepo{pool: pool, timeout: timeout}
}

func (r *ArticleRepo) List(ctx context.Context) ([]models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT m_article_id, image, title, secondtitle, text, added, favorite
		FROM articles
		ORDER BY m_article_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var results []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Image, &a.Title, &a.SecondTitle, &a.Text, &a.Added, &a.Favorite); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return results, nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT m_article_id, image, title, secondtitle, text, added, favorite
		FROM articles
		WHERE m_article_id = $1
	`, id)

	var a models.Article
	if err := row.Scan(&a.ID, &a.Image, &a.Title, &a.SecondTitle, &a.Text, &a.Added, &a.Favorite); err != nil {
		return nil, fmt.Errorf("get article: %w", translate(err))
	}
	return &a, nil
}

func (r *ArticleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles (image, title, secondtitle, text, added, favorite)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING m_article_id
	`, a.Image, a.Title, a.SecondTitle, a.Text, a.Added, a.Favorite)

	if err := row.Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return a, nil
}

func (r *ArticleRepo) Update(ctx context.Context, a *models.Article) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET image = $1, title = $2, secondtitle = $3, text = $4, favorite = $5
		WHERE m_article_id = $6
		RETURNING m_article_id, image, title, secondtitle, text, added, favorite
	`, a.Image, a.Title, a.SecondTitle, a.Text, a.Favorite, a.ID)

	var updated models.Article
	if err := row.Scan(&updated.ID, &updated.Image, &updated.Title, &updated.SecondTitle, &updated.Text, &updated.Added, &updated.Favorite); err != nil {
		return nil, fmt.Errorf("update article: %w", translate(err))
	}
	return &updated, nil
}

// DeleteCascade removes dependents before the article row itself, all inside
// one transaction: responses, then comments, then the article. If any
// statement fails the whole delete rolls back and the article stays intact.
func (r *ArticleRepo) DeleteCascade(ctx context.Context, id int64) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin delete article: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM commentsresp WHERE article_id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete article responses: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete article comments: %w", err)
	}

	row := tx.QueryRow(ctx, `
		DELETE FROM articles
		WHERE m_article_id = $1
		RETURNING m_article_id, image, title, secondtitle, text, added, favorite
	`, id)

	var a models.Article
	if err := row.Scan(&a.ID, &a.Image, &a.Title, &a.SecondTitle, &a.Text, &a.Added, &a.Favorite); err != nil {
		return nil, fmt.Errorf("delete article: %w", translate(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit delete article: %w", err)
	}
	return &a, nil
}
