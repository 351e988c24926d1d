package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/AIMANKHANN123/pulse-backend/internal/config"
	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

// StatusError 表示上游返回了非 2xx 的状态码
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("上游接口 %s 返回状态码 %d", e.Path, e.StatusCode)
}

// Client 封装对上游脉搏调查 API 的只读访问
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Upstream.RequestTimeout) * time.Second,
		},
	}
}

// ListUsers 获取上游的全量用户列表
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON(ctx, "/user/basic-index", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUserAnswers 获取单个用户的问卷回答
// 非 2xx 的响应会以 StatusError 的形式返回，由调用方决定如何处理
func (c *Client) ListUserAnswers(ctx context.Context, userID int64) ([]domain.Answer, error) {
	var answers []domain.Answer
	if err := c.getJSON(ctx, fmt.Sprintf("/pulse-survey-answers/index/%d", userID), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// getJSON 发起 GET 请求并解出 {"data": ...} 信封
// 网络错误和 5xx 会按指数退避重试，4xx 不重试
func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Upstream.BaseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Upstream.Token)
		req.Header.Set("Company-Id", c.cfg.Upstream.CompanyID)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return &StatusError{StatusCode: resp.StatusCode, Path: path}
		}
		if resp.StatusCode >= http.StatusMultipleChoices {
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Path: path})
		}

		envelope := struct {
			Data json.RawMessage `json:"data"`
		}{}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return backoff.Permanent(fmt.Errorf("解析上游响应失败: %w", err))
		}
		if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
			return nil
		}
		if err := json.Unmarshal(envelope.Data, dst); err != nil {
			return backoff.Permanent(fmt.Errorf("解析上游数据失败: %w", err))
		}

		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Duration(c.cfg.Upstream.RetryMaxElapsed) * time.Second

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}
