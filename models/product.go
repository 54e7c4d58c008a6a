package models

type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Price        int     `json:"price" validate:"gte=0"` // whole Naira
	OldPrice     *int    `json:"oldPrice,omitempty" validate:"omitempty,gt=0"`
	ImageURL     string  `json:"imageUrl" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	SubCategory  string  `json:"subCategory,omitempty"`
	IsNew        bool    `json:"isNew"`
	IsBestSeller bool    `json:"isBestSeller"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int     `json:"reviewCount" validate:"gte=0"`
}
