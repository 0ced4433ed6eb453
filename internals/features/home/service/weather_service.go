package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"kuisku_backend/internals/configs"
	"kuisku_backend/internals/features/home/dto"
)

const (
	maxForecastDays = 3
	dtTxtLayout     = "2006-01-02 15:04:05" // API melaporkan dalam UTC
)

/* ==========================
   Wire format OpenWeatherMap
========================== */

type forecastSample struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		TempMax float64 `json:"temp_max"`
		TempMin float64 `json:"temp_min"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

type forecastResponse struct {
	List []forecastSample `json:"list"`
}

/* ==========================
   Service
========================== */

// ForecastService mengambil forecast 3-jam-an dari API lalu meringkasnya
// jadi maksimal 3 hari. Tanpa cache, tanpa retry.
type ForecastService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	displayZone *time.Location
}

func NewForecastService(baseURL, apiKey string) *ForecastService {
	loc, err := time.LoadLocation(configs.DisplayTimezone)
	if err != nil {
		// Istanbul UTC+3 sepanjang tahun
		log.Printf("[WARN] load timezone %s: %v, pakai fixed zone", configs.DisplayTimezone, err)
		loc = time.FixedZone("TRT", 3*60*60)
	}
	return &ForecastService{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Client:      &http.Client{Timeout: 10 * time.Second},
		displayZone: loc,
	}
}

// Forecast melakukan satu GET ke API forecast untuk kota tertentu.
// Semua kegagalan (network, non-2xx, decode) dikembalikan sebagai error;
// caller merender halaman degraded dengan warning.
func (s *ForecastService) Forecast(ctx context.Context, city string) ([]dto.ForecastDay, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.APIKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("weather API status %d untuk kota %q", resp.StatusCode, city)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed forecastResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	return s.summarize(parsed.List), nil
}

// summarize mengelompokkan sample per tanggal di zona tampilan, ambil sample
// PERTAMA per tanggal (urutan input, bukan jam terpagi), maksimal 3 hari.
func (s *ForecastService) summarize(samples []forecastSample) []dto.ForecastDay {
	days := make([]dto.ForecastDay, 0, maxForecastDays)
	seen := make(map[string]struct{}, maxForecastDays)

	for _, sample := range samples {
		ts, err := time.ParseInLocation(dtTxtLayout, sample.DtTxt, time.UTC)
		if err != nil {
			log.Printf("[WARN] dt_txt tidak valid %q: %v", sample.DtTxt, err)
			continue
		}
		local := ts.In(s.displayZone)

		date := local.Format("2006-01-02")
		if _, ok := seen[date]; ok {
			continue
		}

		day := dto.ForecastDay{
			Day:       local.Weekday().String(),
			Date:      date,
			Time:      local.Format("15:04"),
			DayTemp:   sample.Main.TempMax,
			NightTemp: sample.Main.TempMin,
		}
		if len(sample.Weather) > 0 {
			day.Description = sample.Weather[0].Description
			day.Icon = sample.Weather[0].Icon
		}

		days = append(days, day)
		seen[date] = struct{}{}
		if len(days) == maxForecastDays {
			break
		}
	}

	return days
}
