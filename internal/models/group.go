package models

// Group is a named community posts can be filed under.
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:255"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
