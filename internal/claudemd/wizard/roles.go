// Package wizard walks an ordered list of interactive steps for a
// selected role, filling a doc.Config along the way.
package wizard

import "github.com/yinchengxin/claudekit/internal/claudemd/doc"

// Role carries the per-role wizard flow: localized labels, the canned
// role sentence, and the ordered step names to run.
type Role struct {
	Key     string
	LabelZH string
	LabelEN string
	RoleZH  string
	RoleEN  string
	Steps   []string
}

// Label returns the localized role label.
func (r Role) Label(loc doc.Locale) string {
	return loc.Pick(r.LabelZH, r.LabelEN)
}

// RoleText returns the localized role sentence, falling back to English.
func (r Role) RoleText(loc doc.Locale) string {
	if s := loc.Pick(r.RoleZH, r.RoleEN); s != "" {
		return s
	}
	return r.RoleEN
}

// Roles is the fixed role registry in menu order. Only selecting a
// different role changes which steps run or their order.
var Roles = []Role{
	{
		Key:     "go_backend",
		LabelZH: "Go 后端工程师",
		LabelEN: "Go Backend Engineer",
		RoleZH:  "资深 Go 后端工程师，擅长高性能 API 设计、并发模式和生产级系统",
		RoleEN:  "senior Go backend engineer with expertise in high-performance API design, concurrency patterns, and production-grade systems",
		Steps: []string{
			"project_info", "tech_go", "project_structure", "commands",
			"code_style", "core_rules", "workflow", "testing",
			"error_handling", "security", "git", "hard_rules", "gotchas", "references",
		},
	},
	{
		Key:     "python_backend",
		LabelZH: "Python 后端工程师",
		LabelEN: "Python Backend Engineer",
		RoleZH:  "资深 Python 后端工程师，擅长 FastAPI/Django、SQLAlchemy、异步编程和生产级 Python 系统",
		RoleEN:  "senior Python backend engineer with deep expertise in FastAPI/Django, SQLAlchemy, async programming, and production Python systems",
		Steps: []string{
			"project_info", "tech_python", "project_structure", "commands",
			"code_style", "core_rules", "workflow", "testing",
			"error_handling", "security", "git", "hard_rules", "gotchas", "references",
		},
	},
	{
		Key:     "devops_sre",
		LabelZH: "DevOps / SRE 运维工程师",
		LabelEN: "DevOps / SRE Engineer",
		RoleZH:  "资深 DevOps/SRE 工程师，擅长 Linux 系统、容器化、Kubernetes、CI/CD、监控和基础设施自动化",
		RoleEN:  "senior DevOps/SRE engineer with deep expertise in Linux systems, containers, Kubernetes, CI/CD, monitoring, and infrastructure automation",
		Steps: []string{
			"project_info", "tech_devops", "project_structure", "commands",
			"iac_rules", "workflow", "monitoring",
			"security", "git", "hard_rules", "gotchas", "references",
		},
	},
	{
		Key:     "fullstack",
		LabelZH: "全栈工程师",
		LabelEN: "Full-Stack Engineer",
		RoleZH:  "资深全栈工程师，擅长现代前端框架和后端 API 设计",
		RoleEN:  "senior full-stack engineer with expertise in modern frontend frameworks and backend API design",
		Steps: []string{
			"project_info", "tech_fullstack", "project_structure", "commands",
			"code_style", "core_rules", "workflow", "testing",
			"security", "git", "hard_rules", "gotchas", "references",
		},
	},
	{
		Key:     "data_engineer",
		LabelZH: "数据工程师",
		LabelEN: "Data Engineer",
		RoleZH:  "资深数据工程师，擅长 ETL 流水线、数据质量、批流处理和数据仓库",
		RoleEN:  "senior data engineer with expertise in ETL pipelines, data quality, batch/stream processing, and data warehousing",
		Steps: []string{
			"project_info", "tech_data", "project_structure", "commands",
			"data_rules", "workflow", "testing",
			"security", "git", "hard_rules", "gotchas", "references",
		},
	},
	{
		Key:     "custom",
		LabelZH: "自定义角色",
		LabelEN: "Custom Role",
		Steps: []string{
			"project_info", "tech_generic", "project_structure", "commands",
			"code_style", "core_rules", "workflow", "testing",
			"error_handling", "security", "git", "hard_rules", "gotchas", "references",
		},
	},
}

// FindRole looks up a role by key.
func FindRole(key string) (Role, bool) {
	for _, r := range Roles {
		if r.Key == key {
			return r, true
		}
	}
	return Role{}, false
}
