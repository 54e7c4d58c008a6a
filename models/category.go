package models

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"unique" json:"name" validate:"required"`
	Slug     string `gorm:"unique" json:"slug" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty"`
	ParentID *uint  `json:"parentId,omitempty"` // nil for top-level categories
}
