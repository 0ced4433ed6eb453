package questions

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"kuisku_backend/internals/features/quiz/model"
	questionRepo "kuisku_backend/internals/features/quiz/repository"
)

type QuestionSeed struct {
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectOption string `json:"correct_option"`
}

// SeedQuestionsFromJSON memuat soal dari file JSON. Soal dengan teks yang
// sudah ada dilewati. correct_option sengaja tidak divalidasi terhadap
// option1..option4, kompatibel dengan baris lama.
func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file soal:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []QuestionSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	repo := questionRepo.NewQuestionRepository(db)

	for _, data := range inputs {
		count, err := repo.CountByText(data.QuestionText)
		if err != nil {
			log.Printf("❌ Gagal cek soal '%s': %v", data.QuestionText, err)
			continue
		}
		if count > 0 {
			log.Printf("ℹ️ Soal '%s' sudah ada, dilewati.", data.QuestionText)
			continue
		}

		question := model.QuestionModel{
			QuestionText:  data.QuestionText,
			Option1:       data.Option1,
			Option2:       data.Option2,
			Option3:       data.Option3,
			Option4:       data.Option4,
			CorrectOption: data.CorrectOption,
		}
		if err := repo.Insert(&question); err != nil {
			log.Printf("❌ Gagal insert soal '%s': %v", data.QuestionText, err)
			continue
		}
		log.Printf("✅ Soal '%s' berhasil di-seed.", data.QuestionText)
	}
}
