package models

import "time"

type Article struct {
	ID          int64     `json:"m_article_id"`
	Image       string    `json:"image"`
	Title       string    `json:"title"`
	SecondTitle string    `json:"secondtitle"`
	Text        string    `json:"text"`
	Added       time.Time `json:"added"`
	Favorite    bool      `json:"favorite"`
}
