package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
	"github.com/AIMANKHANN123/pulse-backend/internal/utils"
)

// Provider 是聚合所需的上游读取操作
type Provider interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUserAnswers(ctx context.Context, userID int64) ([]domain.Answer, error)
}

type Options struct {
	// EnableMockData 控制在没有任何有效回答时是否用随机数据兜底
	EnableMockData bool
	// MaxConcurrentFetches 限制同时向上游发起的回答查询数量
	MaxConcurrentFetches int
}

type Aggregator struct {
	provider Provider
	options  Options
}

func NewAggregator(provider Provider, options Options) *Aggregator {
	if options.MaxConcurrentFetches <= 0 {
		options.MaxConcurrentFetches = 1
	}

	return &Aggregator{
		provider: provider,
		options:  options,
	}
}

// ComputeDashboard 把一次仪表盘请求完整地走完拉取、兜底、归约和按角色成型四个阶段
// 没有用户或没有有效分数时返回 Status 载荷，这是合法结果而不是错误
func (a *Aggregator) ComputeDashboard(ctx context.Context, role domain.Role, companyID int64, userID int64) (any, error) {
	users, err := a.fetchUsers(ctx, role, companyID, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return domain.Status{Message: "No users found for this role"}, nil
	}

	answers := a.fetchAnswers(ctx, users)
	answers = a.applyMockFallback(answers, len(users))

	scores := extractScores(answers)
	if len(scores) == 0 {
		return domain.Status{Role: role, CompanyID: companyID, Message: "No valid sentiment scores"}, nil
	}

	stats := reduce(scores, len(users), len(answers))

	switch role {
	case domain.RoleAdmin:
		return buildAdminDashboard(companyID, stats), nil
	case domain.RoleManager:
		return buildManagerDashboard(stats), nil
	case domain.RoleEmployee:
		return buildEmployeeDashboard(stats), nil
	default:
		// ParseRole 保证不会走到这里
		return nil, fmt.Errorf("未知角色: %s", role)
	}
}

// ComputeFlat 是聚合器的第二种输出模式，共用同一套拉取流程，归约成扁平指标
func (a *Aggregator) ComputeFlat(ctx context.Context, role domain.Role, companyID int64, userID int64) (domain.FlatMetrics, error) {
	users, err := a.fetchUsers(ctx, role, companyID, userID)
	if err != nil {
		return domain.FlatMetrics{}, err
	}
	if len(users) == 0 {
		return domain.FlatMetrics{}, nil
	}

	answers := a.fetchAnswers(ctx, users)

	return calculateFlatMetrics(answers), nil
}

// fetchUsers 拉取全量用户后按角色过滤
// 过滤规则是硬性边界：员工只能看到自己，管理者只能看到直接下属，管理员能看到整个公司
func (a *Aggregator) fetchUsers(ctx context.Context, role domain.Role, companyID int64, userID int64) ([]domain.User, error) {
	all, err := a.provider.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取用户列表失败: %w", err)
	}

	users := make([]domain.User, 0, len(all))
	for _, u := range all {
		switch role {
		case domain.RoleEmployee:
			if u.ID == userID {
				users = append(users, u)
			}
		case domain.RoleManager:
			if u.ManagerID == userID {
				users = append(users, u)
			}
		case domain.RoleAdmin:
			if u.CompanyID == companyID {
				users = append(users, u)
			}
		}
	}

	slog.Info("已获取用户列表", "role", role, "count", len(users))
	return users, nil
}

// fetchAnswers 逐个用户拉取问卷回答，并发数由 MaxConcurrentFetches 限制
// 单个用户的失败只会被记录并视作没有回答，绝不中断其他用户的拉取
func (a *Aggregator) fetchAnswers(ctx context.Context, users []domain.User) []domain.Answer {
	perUser := make([][]domain.Answer, len(users))

	sem := make(chan struct{}, a.options.MaxConcurrentFetches)
	wg := sync.WaitGroup{}
	for i, user := range users {
		wg.Add(1)
		go func(i int, userID int64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			answers, err := a.provider.ListUserAnswers(ctx, userID)
			if err != nil {
				slog.Warn("获取用户回答失败", "user_id", userID, "error", err)
				return
			}
			perUser[i] = answers
		}(i, user.ID)
	}
	wg.Wait()

	// 按用户顺序拼接，单个用户内部保持上游返回的顺序
	allAnswers := make([]domain.Answer, 0)
	for _, answers := range perUser {
		allAnswers = append(allAnswers, answers...)
	}
	return allAnswers
}

// applyMockFallback 在回答为空或全部缺失情绪分数时整体替换为随机兜底数据
// 兜底只在配置开启时生效，且只体现在日志里，输出载荷不带任何标记
func (a *Aggregator) applyMockFallback(answers []domain.Answer, userCount int) []domain.Answer {
	if !a.options.EnableMockData {
		return answers
	}

	for _, ans := range answers {
		if ans.SentimentScore != nil {
			return answers
		}
	}

	slog.Warn("没有可用的真实问卷数据，使用随机兜底数据", "user_count", userCount)
	return utils.GenerateMockAnswers(userCount)
}

// extractScores 提取有效的情绪分数，缺失或非数值的条目直接丢弃
func extractScores(answers []domain.Answer) []float64 {
	scores := make([]float64, 0, len(answers))
	for _, ans := range answers {
		if ans.SentimentScore == nil || math.IsNaN(*ans.SentimentScore) {
			continue
		}
		scores = append(scores, *ans.SentimentScore)
	}
	return scores
}
