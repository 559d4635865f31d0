package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewCommentRepo(pool *pgxpool.Pool, timeout time.Duration) *CommentRepo {
	return &CommentRepo{pool: pool, timeout: timeout}
}

func (r *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT c.m_comment_id, c.article_id, c.user_id, c.comment, c.added, u.name
		FROM comments c
		INNER JOIN users u ON c.user_id = u.m_user_id
		WHERE c.article_id = $1
		ORDER BY c.m_comment_id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var results []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Comment, &c.Added, &c.UserName); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return results, nil
}

func (r *CommentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (article_id, user_id, comment, added)
		VALUES ($1, $2, $3, $4)
		RETURNING m_comment_id
	`, c.ArticleID, c.UserID, c.Comment, c.Added)

	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}

// DeleteCascade removes a comment's responses before the comment row, in one
// transaction.
func (r *CommentRepo) DeleteCascade(ctx context.Context, commentID int64) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin delete comment: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM commentsresp WHERE comment_id = $1`, commentID); err != nil {
		return nil, fmt.Errorf("delete comment responses: %w", err)
	}

	row := tx.QueryRow(ctx, `
		DELETE FROM comments
		WHERE m_comment_id = $1
		RETURNING m_comment_id, article_id, user_id, comment, added
	`, commentID)

	var c models.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Comment, &c.Added); err != nil {
		return nil, fmt.Errorf("delete comment: %w", translate(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit delete comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepo) ListResponsesByArticle(ctx context.Context, articleID int64) ([]models.CommentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT cr.m_commentresp_id, cr.article_id, cr.comment_id, cr.user_id, cr.resp, cr.added, u.name
		FROM commentsresp cr
		INNER JOIN users u ON cr.user_id = u.m_user_id
		WHERE cr.article_id = $1
		ORDER BY cr.m_commentresp_id
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comment responses: %w", err)
	}
	defer rows.Close()

	var results []models.CommentResponse
	for rows.Next() {
		var cr models.CommentResponse
		if err := rows.Scan(&cr.ID, &cr.ArticleID, &cr.CommentID, &cr.UserID, &cr.Resp, &cr.Added, &cr.UserName); err != nil {
			return nil, fmt.Errorf("scan comment response: %w", err)
		}
		results = append(results, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment responses: %w", err)
	}
	return results, nil
}

func (r *CommentRepo) CreateResponse(ctx context.Context, cr *models.CommentResponse) (*models.CommentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO commentsresp (article_id, comment_id, user_id, resp, added)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING m_commentresp_id
	`, cr.ArticleID, cr.CommentID, cr.UserID, cr.Resp, cr.Added)

	if err := row.Scan(&cr.ID); err != nil {
		return nil, fmt.Errorf("insert comment response: %w", err)
	}
	return cr, nil
}

func (r *CommentRepo) DeleteResponse(ctx context.Context, respID int64) (*models.CommentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		DELETE FROM commentsresp
		WHERE m_commentresp_id = $1
		RETURNING m_commentresp_id, article_id, comment_id, user_id, resp, added
	`, respID)

	var cr models.CommentResponse
	if err := row.Scan(&cr.ID, &cr.ArticleID, &cr.CommentID, &cr.UserID, &cr.Resp, &cr.Added); err != nil {
		return nil, fmt.Errorf("delete comment response: %w", translate(err))
	}
	return &cr, nil
}
