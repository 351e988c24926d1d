package domain

// Answer 是上游问卷接口返回的单条回答
// 指针字段用来区分缺失和零值，缺失的分数会被丢弃而不是按 0 处理
type Answer struct {
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	OHI            *float64 `json:"ohi,omitempty"`
	Engagement     *float64 `json:"engagement,omitempty"`
	Burnout        *float64 `json:"burnout,omitempty"`
	ENPS           *float64 `json:"enps,omitempty"`
	Participated   bool     `json:"participated,omitempty"`
}
