package metrics

import "math"

// Stats 是归约阶段的产物，Presenter 据此生成各角色的仪表盘
type Stats struct {
	AvgSentiment      float64
	AvgScaled         float64
	BurnoutRiskCount  int
	ParticipationRate int
	TotalUsers        int
	TotalResponses    int
	Scores            []float64
}

// reduce 把有效分数归约成统计量
// 参与率的分母始终是请求覆盖的用户总数，不随无效回答的丢弃而变化
func reduce(scores []float64, userCount, responseCount int) *Stats {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))

	burnoutRiskCount := 0
	for _, s := range scores {
		if math.Max(0, 1-s) > 0.7 {
			burnoutRiskCount++
		}
	}

	denominator := userCount
	if denominator == 0 {
		denominator = 1
	}

	return &Stats{
		AvgSentiment:      avg,
		AvgScaled:         round2(avg * 10),
		BurnoutRiskCount:  burnoutRiskCount,
		ParticipationRate: int(math.Round(float64(len(scores)) / float64(denominator) * 100)),
		TotalUsers:        userCount,
		TotalResponses:    responseCount,
		Scores:            scores,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
