package models

import "time"

// Follow is a directed edge: UserID follows AuthorID. The composite
// unique index keeps the pair unique at the storage layer; handlers
// additionally check before inserting so repeated follows stay no-ops.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at"`
}
