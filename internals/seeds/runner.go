package seeds

import (
	"gorm.io/gorm"

	questions "kuisku_backend/internals/seeds/questions"
)

// RunAllSeeds dijalankan saat RUN_SEEDS=1 (lihat main.go).
func RunAllSeeds(db *gorm.DB) {
	questions.SeedQuestionsFromJSON(db, "internals/seeds/questions/data_questions.json")
}
