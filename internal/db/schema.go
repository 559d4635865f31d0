package db

import "time"

// Table definitions used only by the startup migration. Column names match the
// legacy schema the API contract exposes (m_article_id and friends), so every
// struct pins them explicitly instead of trusting gorm's naming convention.

type userRow struct {
	ID     int64     `gorm:"column:m_user_id;primaryKey;autoIncrement"`
	Email  string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Name   string    `gorm:"column:name;size:255;not null"`
	Joined time.Time `gorm:"column:joined;not null"`
}

func (userRow) TableName() string { return "users" }

type loginRow struct {
	Email        string     `gorm:"column:email;size:255;primaryKey"`
	Password     string     `gorm:"column:password;size:100;not null"`
	ResetToken   *string    `gorm:"column:resetpasstoken;size:64;index"`
	ResetExpires *time.Time `gorm:"column:resetpassexpires"`
}

func (loginRow) TableName() string { return "login" }

type articleRow struct {
	ID          int64     `gorm:"column:m_article_id;primaryKey;autoIncrement"`
	Image       string    `gorm:"column:image;type:text"`
	Title       string    `gorm:"column:title;size:255;not null"`
	SecondTitle string    `gorm:"column:secondtitle;size:255"`
	Text        string    `gorm:"column:text;type:text"`
	Added       time.Time `gorm:"column:added;not null"`
	Favorite    bool      `gorm:"column:favorite;not null;default:false"`
}

func (articleRow) TableName() string { return "articles" }

type commentRow struct {
	ID        int64     `gorm:"column:m_comment_id;primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Comment   string    `gorm:"column:comment;type:text;not null"`
	Added     time.Time `gorm:"column:added;not null"`
}

func (commentRow) TableName() string { return "comments" }

type commentRespRow struct {
	ID        int64     `gorm:"column:m_commentresp_id;primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	CommentID int64     `gorm:"column:comment_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Resp      string    `gorm:"column:resp;type:text;not null"`
	Added     time.Time `gorm:"column:added;not null"`
}

func (commentRespRow) TableName() string { return "commentsresp" }
