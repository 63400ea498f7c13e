package models

import "time"

// Post is a single publication. CreatedAt is set once on insert and
// drives the newest-first ordering of every feed.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	AuthorID uint  `json:"author_id" gorm:"index"`
	Author   *User `json:"author,omitempty"`

	// A post survives its group: group deletion nulls GroupID.
	GroupID *uint  `json:"group_id,omitempty" gorm:"index"`
	Group   *Group `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostForm is the create/edit form payload. The author never comes from
// the form; handlers take it from the session.
type PostForm struct {
	Text      string `form:"text" validate:"required,min=1"`
	GroupSlug string `form:"group" validate:"omitempty,max=255"`
}
