package wizard

import (
	"strings"

	"github.com/yinchengxin/claudekit/internal/claudemd/doc"
	"github.com/yinchengxin/claudekit/internal/ui"
)

// StepFunc collects one group of answers into the shared config. Steps
// run strictly in the order the role declares; each sees everything the
// previous steps collected.
type StepFunc func(a ui.Asker, loc doc.Locale, c *doc.Config) error

// steps is the fixed step registry. Roles reference these by name.
var steps = map[string]StepFunc{
	"project_info":      stepProjectInfo,
	"tech_go":           stepTechGo,
	"tech_python":       stepTechPython,
	"tech_devops":       stepTechDevOps,
	"tech_fullstack":    stepTechFullstack,
	"tech_data":         stepTechData,
	"tech_generic":      stepTechGeneric,
	"project_structure": stepProjectStructure,
	"commands":          stepCommands,
	"code_style":        stepCodeStyle,
	"core_rules":        stepCoreRules,
	"iac_rules":         stepIacRules,
	"data_rules":        stepDataRules,
	"monitoring":        stepMonitoring,
	"workflow":          stepWorkflow,
	"testing":           stepTesting,
	"error_handling":    stepErrorHandling,
	"security":          stepSecurity,
	"git":               stepGit,
	"hard_rules":        stepHardRules,
	"gotchas":           stepGotchas,
	"references":        stepReferences,
}

func stepProjectInfo(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("项目基础信息", "Project Info"))
	var err error
	if c.ProjectName, err = a.Input(loc.Pick("项目名称", "Project name"), "my-project"); err != nil {
		return err
	}
	if c.ProjectDesc, err = a.Input(loc.Pick("一句话项目描述", "One-line description"), ""); err != nil {
		return err
	}
	if c.ProjectType, err = a.Select(loc.Pick("项目类型", "Project type"), []ui.Option{
		{Key: "Backend API", Label: loc.Pick("后端 API 服务", "Backend API Service")},
		{Key: "CLI Tool", Label: loc.Pick("命令行工具", "CLI Tool")},
		{Key: "Microservices", Label: loc.Pick("微服务架构", "Microservices")},
		{Key: "Full-Stack", Label: loc.Pick("全栈 Web 应用", "Full-Stack Web App")},
		{Key: "Data Pipeline", Label: loc.Pick("数据处理 / ETL", "Data Pipeline / ETL")},
		{Key: "DevOps/Infra", Label: loc.Pick("基础设施 / DevOps", "Infrastructure / DevOps")},
		{Key: "K8s Operator", Label: "Kubernetes Operator"},
		{Key: "Library/SDK", Label: loc.Pick("库 / SDK", "Library / SDK")},
		{Key: "Other", Label: loc.Pick("其他", "Other")},
	}, "Backend API"); err != nil {
		return err
	}
	c.ProjectStatus, err = a.Input(loc.Pick("项目状态", "Project status"), loc.Pick("开发中", "Active development"))
	return err
}

// techAnswers asks a sequence of prompts and formats each answer as a
// bolded tech-stack bullet.
func techAnswers(a ui.Asker, qs []struct{ label, def string }) ([]string, error) {
	var items []string
	for _, q := range qs {
		val, err := a.Input(q.label, q.def)
		if err != nil {
			return nil, err
		}
		items = append(items, "**"+q.label+"**: "+val)
	}
	return items, nil
}

func stepTechGo(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("Go 技术栈配置", "Go Tech Stack"))
	items, err := techAnswers(a, []struct{ label, def string }{
		{loc.Pick("语言", "Language"), "Go 1.23+"},
		{loc.Pick("HTTP 框架", "HTTP framework"), "Gin"},
		{loc.Pick("数据库", "Database"), "PostgreSQL + Redis"},
		{loc.Pick("数据库访问层", "DB access layer"), "sqlx"},
		{loc.Pick("数据库迁移工具", "Migration tool"), "golang-migrate"},
		{loc.Pick("配置管理", "Config management"), "Viper"},
		{loc.Pick("日志方案", "Logging"), "slog (stdlib)"},
		{loc.Pick("可观测性", "Observability"), "OpenTelemetry + Prometheus"},
		{loc.Pick("部署目标", "Deploy target"), "Docker + Kubernetes"},
		{loc.Pick("操作系统", "OS"), "Linux (Ubuntu 22.04+)"},
	})
	if err != nil {
		return err
	}
	c.TechItems = items

	more, err := a.Confirm(loc.Pick("是否有其他技术组件?", "Any other tech components?"), false)
	if err != nil {
		return err
	}
	if more {
		extras, err := a.Lines(loc.Pick("补充技术组件", "Additional components"))
		if err != nil {
			return err
		}
		c.TechItems = append(c.TechItems, extras...)
	}
	return nil
}

func stepTechPython(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("Python 技术栈配置", "Python Tech Stack"))
	items, err := techAnswers(a, []struct{ label, def string }{
		{loc.Pick("语言", "Language"), "Python 3.12+"},
		{loc.Pick("Web 框架", "Web framework"), "FastAPI + Uvicorn"},
		{loc.Pick("数据库", "Database"), "PostgreSQL"},
		{loc.Pick("ORM / 数据访问", "ORM / DB access"), "SQLAlchemy 2.0 (async)"},
		{loc.Pick("迁移工具", "Migration tool"), "Alembic"},
		{loc.Pick("数据验证", "Validation"), "Pydantic v2"},
		{loc.Pick("包管理器", "Package manager"), "uv"},
		{"Lint / Format", "ruff"},
		{loc.Pick("类型检查", "Type checking"), "mypy"},
		{loc.Pick("测试框架", "Test framework"), "pytest + httpx"},
		{loc.Pick("部署目标", "Deploy target"), "Docker + Kubernetes"},
		{loc.Pick("操作系统", "OS"), "Linux (Ubuntu 22.04+)"},
	})
	if err != nil {
		return err
	}
	c.TechItems = items
	return nil
}

func stepTechDevOps(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("运维技术栈配置", "DevOps Tech Stack"))
	items, err := techAnswers(a, []struct{ label, def string }{
		{loc.Pick("云平台", "Cloud provider"), "AWS"},
		{loc.Pick("IaC 工具", "IaC tool"), "Terraform"},
		{loc.Pick("配置管理工具", "Config management"), "Ansible"},
		{loc.Pick("容器运行时", "Container runtime"), "Docker + containerd"},
		{loc.Pick("编排平台", "Orchestration"), "Kubernetes (EKS)"},
		{loc.Pick("CI/CD 平台", "CI/CD platform"), "GitHub Actions"},
		{loc.Pick("监控方案", "Monitoring"), "Prometheus + Grafana"},
		{loc.Pick("日志方案", "Logging"), "Loki + Grafana"},
		{loc.Pick("密钥管理", "Secret management"), "AWS Secrets Manager / Vault"},
		{loc.Pick("脚本语言", "Scripting languages"), "Bash, Python, Go"},
		{loc.Pick("操作系统", "OS"), "Ubuntu 22.04 / Amazon Linux 2023"},
	})
	if err != nil {
		return err
	}
	c.TechItems = items
	return nil
}

func stepTechFullstack(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("全栈技术栈配置", "Full-Stack Tech Stack"))
	feLang, err := a.Input(loc.Pick("前端语言", "Frontend language"), "TypeScript")
	if err != nil {
		return err
	}
	feFramework, err := a.Input(loc.Pick("前端框架", "Frontend framework"), "React / Next.js")
	if err != nil {
		return err
	}
	beLang, err := a.Input(loc.Pick("后端语言", "Backend language"), "Go")
	if err != nil {
		return err
	}
	beFramework, err := a.Input(loc.Pick("后端框架", "Backend framework"), "Gin")
	if err != nil {
		return err
	}
	rest, err := techAnswers(a, []struct{ label, def string }{
		{loc.Pick("数据库", "Database"), "PostgreSQL + Redis"},
		{loc.Pick("API 风格", "API style"), "RESTful + OpenAPI"},
		{loc.Pick("部署方式", "Deployment"), "Docker + Vercel (FE) + K8s (BE)"},
	})
	if err != nil {
		return err
	}
	c.TechItems = append([]string{
		"**" + loc.Pick("前端", "Frontend") + "**: " + feLang + " + " + feFramework,
		"**" + loc.Pick("后端", "Backend") + "**: " + beLang + " + " + beFramework,
	}, rest...)
	return nil
}

func stepTechData(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("数据工程技术栈", "Data Engineering Tech Stack"))
	items, err := techAnswers(a, []struct{ label, def string }{
		{loc.Pick("语言", "Language"), "Python 3.12+"},
		{loc.Pick("数据处理框架", "Data processing"), "pandas / polars"},
		{loc.Pick("调度 / 编排", "Orchestration"), "Airflow / Dagster"},
		{loc.Pick("数据存储", "Data storage"), "S3 + Parquet"},
		{loc.Pick("数据仓库", "Data warehouse"), "ClickHouse / BigQuery"},
		{loc.Pick("数据验证", "Data validation"), "pandera / great_expectations"},
		{loc.Pick("基础设施", "Infrastructure"), "Docker, Airflow"},
	})
	if err != nil {
		return err
	}
	c.TechItems = items
	return nil
}

func stepTechGeneric(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("技术栈配置", "Tech Stack"))
	ui.Hint(loc.Pick("逐行输入技术组件，格式自由，空行结束", "Enter tech items, one per line, empty to finish"))
	ui.Hint(loc.Pick("例如: **语言**: Go 1.23+", "e.g.: **Language**: Go 1.23+"))
	items, err := a.Lines(loc.Pick("技术组件", "Tech items"))
	if err != nil {
		return err
	}
	c.TechItems = items
	return nil
}

func stepProjectStructure(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("项目结构", "Project Structure"))
	add, err := a.Confirm(loc.Pick("是否添加目录结构?", "Add directory structure?"), true)
	if err != nil || !add {
		return err
	}
	ui.Hint(loc.Pick("粘贴 tree 输出，空行结束", "Paste tree output, empty to finish"))
	lines, err := a.Lines(loc.Pick("目录结构", "Directory structure"))
	if err != nil {
		return err
	}
	c.Structure = strings.Join(lines, "\n")
	return nil
}

func stepCommands(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("常用命令", "Common Commands"))
	pairs, err := a.Pairs(
		loc.Pick("常用命令", "Common commands"),
		loc.Pick("例如: 运行测试=go test ./...", "e.g.: Run tests=go test ./..."),
	)
	if err != nil {
		return err
	}
	for _, pr := range pairs {
		c.Commands = append(c.Commands, doc.Command{Label: pr.Label, Cmd: pr.Value})
	}
	return nil
}

func stepCodeStyle(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("代码规范", "Code Style"))
	ui.Hint(loc.Pick("提示：格式化/lint 最好交给工具，这里写 Claude 无法推断的约定", "Tip: let linters handle formatting; write conventions Claude cannot infer"))
	var err error
	c.CodeStyleRules, err = a.Lines(loc.Pick("代码规范", "Code style rules"))
	return err
}

func stepCoreRules(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("核心规范", "Core Rules"))
	ui.Hint(loc.Pick("只写「不写就会出错」的规则，保持精简", "Only rules that prevent mistakes. Keep it lean."))
	var err error
	c.CoreRules, err = a.Lines(loc.Pick("核心规范", "Core rules"))
	return err
}

// stepIacRules replaces code_style + core_rules for the DevOps role.
func stepIacRules(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("基础设施与 IaC 规范", "Infrastructure & IaC Rules"))
	ui.Hint(loc.Pick("涵盖 Terraform/Ansible/K8s/脚本 等规范", "Terraform, Ansible, K8s, scripts, etc."))
	var err error
	if c.CoreRules, err = a.Lines(loc.Pick("IaC 核心规范", "IaC core rules")); err != nil {
		return err
	}
	c.CodeStyleRules, err = a.Lines(loc.Pick("脚本 / 代码规范", "Script / code style"))
	return err
}

// stepDataRules replaces code_style + core_rules for the data role.
func stepDataRules(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("数据工程规范", "Data Engineering Rules"))
	ui.Hint(loc.Pick("数据正确性、幂等、质量校验等", "Correctness, idempotency, quality checks, etc."))
	var err error
	if c.CoreRules, err = a.Lines(loc.Pick("数据工程核心规范", "Data engineering core rules")); err != nil {
		return err
	}
	c.CodeStyleRules, err = a.Lines(loc.Pick("代码规范", "Code style rules"))
	return err
}

// stepMonitoring fills the testing section for the DevOps role.
func stepMonitoring(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("监控与告警规范", "Monitoring & Alerting"))
	var err error
	c.TestingRules, err = a.Lines(loc.Pick("监控 / 验证 / 测试规范", "Monitoring / validation / testing rules"))
	return err
}

func stepWorkflow(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("工作流程", "Workflow"))
	ui.Hint(loc.Pick("Claude Code 处理任务时应该遵循的步骤", "Steps Claude Code should follow when handling tasks"))
	var err error
	c.Workflow, err = a.Lines(loc.Pick("工作流步骤", "Workflow steps"))
	return err
}

func stepTesting(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("测试规范", "Testing"))
	var err error
	c.TestingRules, err = a.Lines(loc.Pick("测试规范", "Testing rules"))
	return err
}

func stepErrorHandling(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("错误处理", "Error Handling"))
	var err error
	c.ErrorHandling, err = a.Lines(loc.Pick("错误处理规范", "Error handling rules"))
	return err
}

func stepSecurity(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("安全规范", "Security"))
	var err error
	c.SecurityRules, err = a.Lines(loc.Pick("安全规范", "Security rules"))
	return err
}

func stepGit(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("Git 规范", "Git Conventions"))
	var err error
	c.GitRules, err = a.Lines(loc.Pick("Git 规范", "Git rules"))
	return err
}

func stepHardRules(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("禁止事项 (NEVER DO)", "Hard Rules (NEVER DO)"))
	ui.Hint(loc.Pick("用 NEVER/禁止 句式写清楚红线", "Write clear red lines with NEVER"))
	var err error
	c.HardRules, err = a.Lines(loc.Pick("禁止事项", "Hard rules"))
	return err
}

func stepGotchas(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("特殊注意 / 项目陷阱", "Gotchas & Warnings"))
	var err error
	c.Gotchas, err = a.Lines(loc.Pick("特殊注意事项", "Gotchas"))
	return err
}

func stepReferences(a ui.Asker, loc doc.Locale, c *doc.Config) error {
	ui.Subheader(loc.Pick("参考资源", "References"))
	ui.Hint(loc.Pick("填入文档路径或链接让 Claude 需要时去查", "Paths or URLs Claude can consult when needed"))
	var err error
	c.References, err = a.Lines(loc.Pick("参考资源", "References"))
	return err
}
