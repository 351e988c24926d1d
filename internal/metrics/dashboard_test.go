package metrics

import (
	"reflect"
	"testing"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

func TestGenerateTrend(t *testing.T) {
	trend := generateTrend(8.5)

	want := []domain.TrendPoint{
		{Week: "W1", Sentiment: 9.7, Engagement: 6.8, Burnout: 12},
		{Week: "W2", Sentiment: 9.3, Engagement: 6.5, Burnout: 14},
		{Week: "W3", Sentiment: 8.9, Engagement: 6.1, Burnout: 16},
		{Week: "W4", Sentiment: 8.5, Engagement: 5.9, Burnout: 115},
	}
	if !reflect.DeepEqual(trend, want) {
		t.Fatalf("trend = %+v, want %+v", trend, want)
	}
}

func TestBuildAdminDashboardThresholds(t *testing.T) {
	cases := []struct {
		name              string
		stats             Stats
		wantSentiment     string
		wantBurnout       string
		wantAlertCount    int
		wantBurnoutsValue string
	}{
		{
			name:              "healthy company",
			stats:             Stats{AvgScaled: 7.2, BurnoutRiskCount: 1},
			wantSentiment:     "green",
			wantBurnout:       "amber",
			wantAlertCount:    0,
			wantBurnoutsValue: "1 Employees",
		},
		{
			name:              "low sentiment and critical burnout",
			stats:             Stats{AvgScaled: 3.4, BurnoutRiskCount: 6},
			wantSentiment:     "amber",
			wantBurnout:       "red",
			wantAlertCount:    1,
			wantBurnoutsValue: "6 Employees",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dashboard := buildAdminDashboard(4, &tc.stats)

			if dashboard.Cards[0].Status != tc.wantSentiment {
				t.Errorf("sentiment status = %q, want %q", dashboard.Cards[0].Status, tc.wantSentiment)
			}
			if dashboard.Cards[1].Status != tc.wantBurnout {
				t.Errorf("burnout status = %q, want %q", dashboard.Cards[1].Status, tc.wantBurnout)
			}
			if dashboard.Cards[1].Value != tc.wantBurnoutsValue {
				t.Errorf("burnout value = %v, want %q", dashboard.Cards[1].Value, tc.wantBurnoutsValue)
			}
			if len(dashboard.Alerts) != tc.wantAlertCount {
				t.Errorf("alerts = %d, want %d", len(dashboard.Alerts), tc.wantAlertCount)
			}
			if len(dashboard.Cards) != 4 {
				t.Errorf("cards = %d, want 4", len(dashboard.Cards))
			}
			// eNPS 卡片是固定占位值
			if dashboard.Cards[3].Value != "+32" {
				t.Errorf("enps value = %v, want +32", dashboard.Cards[3].Value)
			}
		})
	}
}

func TestBuildAdminDashboardAlertContent(t *testing.T) {
	dashboard := buildAdminDashboard(4, &Stats{AvgScaled: 2.1, BurnoutRiskCount: 8})

	if len(dashboard.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(dashboard.Alerts))
	}
	alert := dashboard.Alerts[0]
	if alert.Severity != "critical" {
		t.Errorf("severity = %q, want critical", alert.Severity)
	}
	if alert.Impact != "8 employees at high risk" {
		t.Errorf("impact = %q", alert.Impact)
	}
}

func TestBuildManagerDashboardThresholds(t *testing.T) {
	stable := buildManagerDashboard(&Stats{AvgScaled: 6.0, BurnoutRiskCount: 2})
	if stable.Cards[0].Status != "green" || stable.Cards[1].Status != "green" {
		t.Errorf("cards = %+v, want both green", stable.Cards)
	}
	if !reflect.DeepEqual(stable.Recommendations, []string{"Team wellbeing looks stable"}) {
		t.Errorf("recommendations = %v", stable.Recommendations)
	}

	stressed := buildManagerDashboard(&Stats{AvgScaled: 4.9, BurnoutRiskCount: 3})
	if stressed.Cards[0].Status != "amber" {
		t.Errorf("sentiment status = %q, want amber", stressed.Cards[0].Status)
	}
	if stressed.Cards[1].Status != "red" {
		t.Errorf("burnout status = %q, want red", stressed.Cards[1].Status)
	}
	if len(stressed.Recommendations) != 2 {
		t.Errorf("recommendations = %v, want the two-item workload set", stressed.Recommendations)
	}
}

func TestBuildEmployeeDashboard(t *testing.T) {
	stressed := buildEmployeeDashboard(&Stats{
		AvgSentiment:   0.6,
		Scores:         []float64{0.3, 0.9},
		TotalResponses: 2,
	})
	// 员工视图看的是第一条分数而不是平均值
	if stressed.PersonalSummary.SentimentScore != 3 {
		t.Errorf("sentimentScore = %v, want 3", stressed.PersonalSummary.SentimentScore)
	}
	if stressed.PersonalSummary.BurnoutProbability != 0.7 {
		t.Errorf("burnoutProbability = %v, want 0.7", stressed.PersonalSummary.BurnoutProbability)
	}
	if stressed.PersonalSummary.Participation != "Completed" {
		t.Errorf("participation = %q, want Completed", stressed.PersonalSummary.Participation)
	}
	if len(stressed.Tips) != 3 {
		t.Errorf("tips = %v, want the three stress tips", stressed.Tips)
	}
	if stressed.Insights[0] != "Your stress indicators are high" {
		t.Errorf("insight = %q", stressed.Insights[0])
	}

	stable := buildEmployeeDashboard(&Stats{
		AvgSentiment:   0.8,
		Scores:         []float64{0.8},
		TotalResponses: 1,
	})
	if stable.Insights[0] != "Your wellbeing looks stable" {
		t.Errorf("insight = %q", stable.Insights[0])
	}
	if len(stable.Tips) != 2 {
		t.Errorf("tips = %v, want the two stable tips", stable.Tips)
	}

	pending := buildEmployeeDashboard(&Stats{
		AvgSentiment:   0.8,
		Scores:         []float64{0.8},
		TotalResponses: 0,
	})
	if pending.PersonalSummary.Participation != "Pending" {
		t.Errorf("participation = %q, want Pending", pending.PersonalSummary.Participation)
	}
}
