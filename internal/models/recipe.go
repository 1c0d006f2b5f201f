package models

import "time"

type Recipe struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Reviews     []Review  `json:"reviews,omitempty" gorm:"foreignKey:RecipeID"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRecipeRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
}
