package repository

import (
	"github.com/lshigami/examportal/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindAllByUsername(username string) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

// FindAllByUsername returns the user's attempts oldest first.
func (r *attemptRepository) FindAllByUsername(username string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("username = ?", username).Order("id ASC").Find(&attempts).Error
	return attempts, err
}
