package models

import "time"

// Comment belongs to exactly one post and one author and cascades with both.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	PostID   uint  `json:"post_id" gorm:"index"`
	AuthorID uint  `json:"author_id" gorm:"index"`
	Author   *User `json:"author,omitempty"`
}

// CommentForm is the add-comment form payload.
type CommentForm struct {
	Text string `form:"text" validate:"required,min=1,max=2000"`
}
