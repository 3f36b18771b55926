package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-offline/internal/application/dto"
)

// TrendsSourceStatic marca la respuesta como datos fijos (no calculados).
const TrendsSourceStatic = "static"

// TrendsUseCase devuelve la serie de tendencias financieras.
//
// Modo offline: la respuesta es un conjunto de datos fijo y no se deriva de la
// tabla transactions. El frontend solo necesita la forma del documento.
type TrendsUseCase struct{}

// NewTrendsUseCase construye el caso de uso.
func NewTrendsUseCase() *TrendsUseCase { return &TrendsUseCase{} }

type cannedMonth struct {
	month, monthAr    string
	revenue, expenses int64
}

var cannedTrends = []cannedMonth{
	{"January", "يناير", 2450000, 1820000},
	{"February", "فبراير", 2680000, 1950000},
	{"March", "مارس", 2910000, 2040000},
	{"April", "أبريل", 3150000, 2210000},
	{"May", "مايو", 3020000, 2180000},
	{"June", "يونيو", 3380000, 2350000},
}

var cannedForecast = []cannedMonth{
	{"July", "يوليو", 3520000, 2430000},
	{"August", "أغسطس", 3690000, 2520000},
	{"September", "سبتمبر", 3850000, 2610000},
}

// GetFinancialTrends devuelve una copia nueva del documento fijo en cada llamada.
func (uc *TrendsUseCase) GetFinancialTrends() *dto.FinancialTrendsDTO {
	return &dto.FinancialTrendsDTO{
		Trends:     toPoints(cannedTrends),
		Forecast:   toPoints(cannedForecast),
		GrowthRate: decimal.RequireFromString("12.5"),
		Confidence: decimal.RequireFromString("0.87"),
		Insights: []string{
			"Revenue grew steadily over the last six months",
			"Material costs remain the largest expense category",
		},
		InsightsAr: []string{
			"نمت الإيرادات بشكل مطرد خلال الأشهر الستة الماضية",
			"تظل تكاليف المواد أكبر فئة من فئات المصروفات",
		},
		GeneratedAt: "2024-06-30T00:00:00Z",
		Source:      TrendsSourceStatic,
	}
}

func toPoints(months []cannedMonth) []dto.TrendPointDTO {
	out := make([]dto.TrendPointDTO, 0, len(months))
	for _, m := range months {
		rev := decimal.NewFromInt(m.revenue)
		exp := decimal.NewFromInt(m.expenses)
		out = append(out, dto.TrendPointDTO{
			Month:    m.month,
			MonthAr:  m.monthAr,
			Revenue:  rev,
			Expenses: exp,
			Profit:   rev.Sub(exp),
		})
	}
	return out
}
