package model

// QuestionModel merepresentasikan tabel questions di database.
// correct_option disimpan apa adanya (teks bebas) dan dibandingkan verbatim
// saat jawaban disubmit, supaya baris lama tetap kompatibel.
type QuestionModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionText  string `gorm:"column:question_text;size:500;not null" json:"question_text"`
	Option1       string `gorm:"column:option1;size:200;not null" json:"option1"`
	Option2       string `gorm:"column:option2;size:200;not null" json:"option2"`
	Option3       string `gorm:"column:option3;size:200;not null" json:"option3"`
	Option4       string `gorm:"column:option4;size:200;not null" json:"option4"`
	CorrectOption string `gorm:"column:correct_option;size:200;not null" json:"-"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// Options mengembalikan keempat pilihan dalam urutan tampil.
func (q *QuestionModel) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}
