package model

import "time"

// Attempt is one scored exam submission. Username is not a foreign key.
type Attempt struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Username    string    `json:"username" gorm:"size:64;not null;index"`
	Score       int       `json:"score" gorm:"not null"`
	Total       int       `json:"total" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
