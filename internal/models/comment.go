package models

import "time"

// Comment rows returned by the list endpoints carry the author's name from the
// users join; it is empty on freshly inserted rows.
type Comment struct {
	ID        int64     `json:"m_comment_id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	Comment   string    `json:"comment"`
	Added     time.Time `json:"added"`
	UserName  string    `json:"name,omitempty"`
}

type CommentResponse struct {
	ID        int64     `json:"m_commentresp_id"`
	ArticleID int64     `json:"article_id"`
	CommentID int64     `json:"comment_id"`
	UserID    int64     `json:"user_id"`
	Resp      string    `json:"resp"`
	Added     time.Time `json:"added"`
	UserName  string    `json:"name,omitempty"`
}
