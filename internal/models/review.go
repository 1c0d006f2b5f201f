package models

import "time"

// Review is a grade left by a user on a recipe. Only the grade feeds the
// profile's average rating; the comment is free text.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	RecipeID  uint      `json:"recipe_id" gorm:"index"`
	Grade     int       `json:"grade"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	Grade   int    `json:"grade" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
