package domain

// Status 表示一次合法但没有数据的聚合结果，不是错误
type Status struct {
	Role      Role   `json:"role,omitempty"`
	CompanyID int64  `json:"company_id,omitempty"`
	Message   string `json:"message"`
}

type Card struct {
	Key       string `json:"key,omitempty"`
	Name      string `json:"name"`
	Value     any    `json:"value"`
	Direction string `json:"direction,omitempty"`
	Progress  int    `json:"progress,omitempty"`
	Status    string `json:"status"`
}

type TrendPoint struct {
	Week       string  `json:"week"`
	Sentiment  float64 `json:"sentiment"`
	Engagement float64 `json:"engagement"`
	Burnout    float64 `json:"burnout"`
}

type Alert struct {
	Severity       string `json:"severity"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

type AdminSummary struct {
	TotalEmployees    int `json:"totalEmployees"`
	TotalResponses    int `json:"totalResponses"`
	ParticipationRate int `json:"participationRate"`
}

type AdminDashboard struct {
	Role       Role         `json:"role"`
	CompanyID  int64        `json:"company_id"`
	Summary    AdminSummary `json:"summary"`
	Cards      []Card       `json:"cards"`
	TrendChart []TrendPoint `json:"trendChart"`
	Alerts     []Alert      `json:"alerts"`
}

type TeamSummary struct {
	TeamSize          int `json:"teamSize"`
	Responses         int `json:"responses"`
	ParticipationRate int `json:"participationRate"`
}

type ManagerDashboard struct {
	Role            Role         `json:"role"`
	TeamSummary     TeamSummary  `json:"teamSummary"`
	Cards           []Card       `json:"cards"`
	TeamTrend       []TrendPoint `json:"teamTrend"`
	Recommendations []string     `json:"recommendations"`
}

type PersonalSummary struct {
	SentimentScore     float64 `json:"sentimentScore"`
	BurnoutProbability float64 `json:"burnoutProbability"`
	Participation      string  `json:"participation"`
}

type EmployeeDashboard struct {
	Role            Role            `json:"role"`
	PersonalSummary PersonalSummary `json:"personalSummary"`
	Insights        []string        `json:"insights"`
	Tips            []string        `json:"tips"`
}

// FlatMetrics 是不分角色的扁平指标汇总，和各角色仪表盘共用同一套拉取流程
type FlatMetrics struct {
	OHI           float64 `json:"ohi"`
	Engagement    float64 `json:"engagement"`
	Burnout       float64 `json:"burnout"`
	ENPS          float64 `json:"enps"`
	Participation int     `json:"participation"`
}
