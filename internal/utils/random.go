package utils

import (
	"math"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

// GenerateMockAnswers 在没有任何真实回答时生成兜底数据
// 数量固定为用户数的 3 倍，分数均匀分布在 [0,1] 并保留两位小数
func GenerateMockAnswers(userCount int) []domain.Answer {
	answers := make([]domain.Answer, 0, userCount*3)
	for i := 0; i < userCount*3; i++ {
		score := math.Round(rand.Float64()*100) / 100
		answers = append(answers, domain.Answer{SentimentScore: &score})
	}
	return answers
}

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := strings.Join(pinyinArray, "")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

// GenerateRandomCompany 为假上游服务生成一家公司的随机员工
// 前 1/5 的员工作为管理者，其余员工随机挂到某个管理者名下
func GenerateRandomCompany(companyID int64, employeeCount int) []domain.User {
	if employeeCount <= 0 {
		return []domain.User{}
	}

	managerCount := (employeeCount-1)/5 + 1
	users := make([]domain.User, 0, employeeCount)

	for i := 0; i < employeeCount; i++ {
		fullName := GenerateRandomChineseName()
		username := GenerateUsernameFromChineseName(fullName)

		user := domain.User{
			ID:        int64(i + 1),
			CompanyID: companyID,
			Name:      fullName,
			Email:     username + "@example.com",
		}
		if i >= managerCount {
			user.ManagerID = int64(rand.Intn(managerCount) + 1)
		}
		users = append(users, user)
	}

	return users
}

// GenerateRandomAnswers 为单个用户生成随机回答
// answerRate 控制带有情绪分数的比例，设为 0 可以用来验证兜底逻辑
func GenerateRandomAnswers(count int, answerRate float64) []domain.Answer {
	answers := make([]domain.Answer, 0, count)
	for i := 0; i < count; i++ {
		ans := domain.Answer{
			OHI:          randomScore(10),
			Engagement:   randomScore(10),
			Burnout:      randomScore(1),
			ENPS:         randomScore(10),
			Participated: rand.Float64() < 0.9,
		}
		if rand.Float64() < answerRate {
			ans.SentimentScore = randomScore(1)
		}
		answers = append(answers, ans)
	}
	return answers
}

func randomScore(scale float64) *float64 {
	score := math.Round(rand.Float64()*scale*100) / 100
	return &score
}
