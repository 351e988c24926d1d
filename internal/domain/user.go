package domain

import "fmt"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole 把请求中的角色字符串转换成枚举
// 未知角色在边界处直接拒绝，不允许出现不过滤的全量用户列表
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

// User 是上游脉搏调查系统中的一名员工
// 核心逻辑只依赖三个 ID 字段，其余字段原样透传
type User struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	ManagerID int64  `json:"manager_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}
