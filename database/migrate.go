package database

import (
	"fmt"

	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedQuestions is inserted when the questions table is empty.
var SeedQuestions = []model.Question{
	{Text: "What is 2 + 2?", Option1: "3", Option2: "4", Option3: "5", Option4: "6", Answer: 2},
	{Text: "Capital of France?", Option1: "Berlin", Option2: "London", Option3: "Paris", Option4: "Rome", Answer: 3},
	{Text: "Java is ...?", Option1: "A fruit", Option2: "A language", Option3: "A car", Option4: "A drink", Answer: 2},
}

// Initialize creates the schema and seeds the question set. Safe to call on every startup.
func Initialize(db *gorm.DB) error {
	if err := AutoMigrateDB(db); err != nil {
		return err
	}
	return Seed(db)
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		questionRepo := repository.NewQuestionRepository(tx)

		count, err := questionRepo.Count()
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if count > 0 {
			log.Debug().Int64("questions", count).Msg("Question table already populated, skipping seed")
			return nil
		}

		questions := make([]model.Question, len(SeedQuestions))
		copy(questions, SeedQuestions)
		if err := questionRepo.CreateBatch(questions); err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		log.Info().Int("questions", len(questions)).Msg("Seeded sample questions")
		return nil
	})
}
