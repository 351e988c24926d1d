package metrics

import (
	"fmt"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

// generateTrend 生成四周的趋势序列
// 偏移量、engagement 和 burnout 都是示意用的固定常量，不是从真实数据推导的
func generateTrend(avgScaled float64) []domain.TrendPoint {
	return []domain.TrendPoint{
		{Week: "W1", Sentiment: round2(avgScaled + 1.2), Engagement: 6.8, Burnout: 12},
		{Week: "W2", Sentiment: round2(avgScaled + 0.8), Engagement: 6.5, Burnout: 14},
		{Week: "W3", Sentiment: round2(avgScaled + 0.4), Engagement: 6.1, Burnout: 16},
		{Week: "W4", Sentiment: round2(avgScaled), Engagement: 5.9, Burnout: 115},
	}
}

func buildAdminDashboard(companyID int64, stats *Stats) domain.AdminDashboard {
	sentimentStatus := "green"
	if stats.AvgScaled < 5 {
		sentimentStatus = "amber"
	}

	burnoutStatus := "amber"
	if stats.BurnoutRiskCount > 5 {
		burnoutStatus = "red"
	}

	alerts := []domain.Alert{}
	if stats.BurnoutRiskCount > 5 {
		alerts = append(alerts, domain.Alert{
			Severity:       "critical",
			Title:          "Burnout risk increasing",
			Description:    "Burnout indicators increased over the last few weeks",
			Impact:         fmt.Sprintf("%d employees at high risk", stats.BurnoutRiskCount),
			Recommendation: "Reduce workload and review sprint scope",
		})
	}

	return domain.AdminDashboard{
		Role:      domain.RoleAdmin,
		CompanyID: companyID,
		Summary: domain.AdminSummary{
			TotalEmployees:    stats.TotalUsers,
			TotalResponses:    stats.TotalResponses,
			ParticipationRate: stats.ParticipationRate,
		},
		Cards: []domain.Card{
			{Key: "sentiment", Name: "Avg Sentiment", Value: stats.AvgScaled, Direction: "down", Progress: 48, Status: sentimentStatus},
			{Key: "burnout", Name: "Burnout Risk", Value: fmt.Sprintf("%d Employees", stats.BurnoutRiskCount), Direction: "up", Progress: stats.BurnoutRiskCount * 5, Status: burnoutStatus},
			{Key: "participation", Name: "Participation Rate", Value: fmt.Sprintf("%d%%", stats.ParticipationRate), Direction: "up", Progress: stats.ParticipationRate, Status: "green"},
			// eNPS 目前是占位值，上游还没有提供对应的数据
			{Key: "enps", Name: "eNPS Score", Value: "+32", Direction: "up", Progress: 70, Status: "blue"},
		},
		TrendChart: generateTrend(stats.AvgScaled),
		Alerts:     alerts,
	}
}

func buildManagerDashboard(stats *Stats) domain.ManagerDashboard {
	sentimentStatus := "green"
	if stats.AvgScaled < 5 {
		sentimentStatus = "amber"
	}

	burnoutStatus := "green"
	if stats.BurnoutRiskCount > 2 {
		burnoutStatus = "red"
	}

	recommendations := []string{"Team wellbeing looks stable"}
	if stats.BurnoutRiskCount > 2 {
		recommendations = []string{"Schedule 1-on-1 meetings", "Balance workload across team"}
	}

	return domain.ManagerDashboard{
		Role: domain.RoleManager,
		TeamSummary: domain.TeamSummary{
			TeamSize:          stats.TotalUsers,
			Responses:         stats.TotalResponses,
			ParticipationRate: stats.ParticipationRate,
		},
		Cards: []domain.Card{
			{Name: "Team Sentiment", Value: stats.AvgScaled, Status: sentimentStatus},
			{Name: "High Burnout Employees", Value: stats.BurnoutRiskCount, Status: burnoutStatus},
		},
		TeamTrend:       generateTrend(stats.AvgScaled),
		Recommendations: recommendations,
	}
}

func buildEmployeeDashboard(stats *Stats) domain.EmployeeDashboard {
	// 员工视图取本人的第一条有效分数，理论上这里不会为空，兜底取整体平均
	selfScore := stats.AvgSentiment
	if len(stats.Scores) > 0 {
		selfScore = stats.Scores[0]
	}

	// 兜底替换后的回答序列也算作已参与
	participation := "Pending"
	if stats.TotalResponses > 0 {
		participation = "Completed"
	}

	insight := "Your wellbeing looks stable"
	tips := []string{"Keep up the good work", "Maintain work-life balance"}
	if selfScore < 0.5 {
		insight = "Your stress indicators are high"
		tips = []string{"Take regular breaks", "Talk to your manager", "Avoid overtime this week"}
	}

	return domain.EmployeeDashboard{
		Role: domain.RoleEmployee,
		PersonalSummary: domain.PersonalSummary{
			SentimentScore:     round2(selfScore * 10),
			BurnoutProbability: round2(1 - selfScore),
			Participation:      participation,
		},
		Insights: []string{insight},
		Tips:     tips,
	}
}
