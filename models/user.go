package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique" json:"username" validate:"required"`
	Password string `json:"-" validate:"required"`
}
