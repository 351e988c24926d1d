package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AIMANKHANN123/pulse-backend/internal/utils"
)

// 本地开发用的假上游服务，模拟脉搏调查 API 的两个只读接口
// 启动后把 UPSTREAM_BASE_URL 指向它即可联调 api 服务
func main() {
	var port int
	var employees int
	var answerRate float64
	var failRate float64
	var companyID int64

	flag.IntVar(&port, "port", 8081, "监听端口")
	flag.IntVar(&employees, "employees", 20, "随机生成的员工数量")
	flag.Float64Var(&answerRate, "answer-rate", 0.8, "回答中带有情绪分数的比例 (设为 0 可以验证兜底逻辑)")
	flag.Float64Var(&failRate, "fail-rate", 0, "单个用户回答接口返回 500 的概率 (用于验证失败隔离)")
	flag.Int64Var(&companyID, "company-id", 4, "公司 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	users := utils.GenerateRandomCompany(companyID, employees)
	logger.Info("已生成随机公司", "company_id", companyID, "employees", len(users))

	mux := chi.NewRouter()
	mux.Use(requireBearerToken)

	mux.Get("/user/basic-index", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, users)
	})

	mux.Get("/pulse-survey-answers/index/{id}", func(w http.ResponseWriter, r *http.Request) {
		if rand.Float64() < failRate {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 || id > int64(len(users)) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeData(w, utils.GenerateRandomAnswers(rand.Intn(4), answerRate))
	})

	addr := fmt.Sprintf(":%d", port)
	logger.Info("假上游服务已启动", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("服务器异常退出", "error", err)
	}
}

// requireBearerToken 和真实上游一样要求携带 Bearer Token，方便验证客户端的请求头
func requireBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		slog.Error("写入响应失败", "error", err)
	}
}
