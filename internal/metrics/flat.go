package metrics

import (
	"math"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

// calculateFlatMetrics 把回答归约成不分角色的扁平指标
// 缺失的字段按 0 计入平均值，没有任何回答时所有指标为零
func calculateFlatMetrics(answers []domain.Answer) domain.FlatMetrics {
	total := len(answers)
	if total == 0 {
		return domain.FlatMetrics{}
	}

	avg := func(pick func(domain.Answer) *float64) float64 {
		sum := 0.0
		for _, ans := range answers {
			if v := pick(ans); v != nil {
				sum += *v
			}
		}
		return round2(sum / float64(total))
	}

	participated := 0
	for _, ans := range answers {
		if ans.Participated {
			participated++
		}
	}

	return domain.FlatMetrics{
		OHI:           avg(func(a domain.Answer) *float64 { return a.OHI }),
		Engagement:    avg(func(a domain.Answer) *float64 { return a.Engagement }),
		Burnout:       avg(func(a domain.Answer) *float64 { return a.Burnout }),
		ENPS:          avg(func(a domain.Answer) *float64 { return a.ENPS }),
		Participation: int(math.Round(float64(participated) / float64(total) * 100)),
	}
}
