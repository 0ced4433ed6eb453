package dto

// ForecastDay adalah ringkasan satu hari untuk halaman utama.
// Transient: dihitung per request, tidak pernah disimpan.
type ForecastDay struct {
	Day         string  `json:"day"`  // nama hari, mis. "Monday"
	Date        string  `json:"date"` // YYYY-MM-DD di zona tampilan
	Time        string  `json:"time"` // HH:MM sample pertama hari itu
	DayTemp     float64 `json:"day_temp"`
	NightTemp   float64 `json:"night_temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
