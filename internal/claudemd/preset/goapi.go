package preset

import "github.com/yinchengxin/claudekit/internal/claudemd/doc"

const goAPIStructureZH = `.
├── cmd/              # 应用入口
│   └── server/       # API 服务主程序
├── internal/         # 私有代码（不可被外部导入）
│   ├── handler/      # HTTP 处理器
│   ├── service/      # 业务逻辑层
│   ├── repository/   # 数据访问层
│   ├── model/        # 领域模型
│   └── middleware/   # HTTP 中间件
├── pkg/              # 可复用公共包
├── api/              # OpenAPI/Swagger 规范
├── migrations/       # 数据库迁移文件
├── deploy/           # 部署配置 (Dockerfile, K8s)
├── scripts/          # 构建与工具脚本
├── Makefile
├── go.mod
└── CLAUDE.md`

const goAPIStructureEN = `.
├── cmd/              # Application entrypoints
│   └── server/       # Main API server
├── internal/         # Private application code
│   ├── handler/      # HTTP handlers
│   ├── service/      # Business logic
│   ├── repository/   # Data access layer
│   ├── model/        # Domain models
│   └── middleware/   # HTTP middleware
├── pkg/              # Public reusable packages
├── api/              # OpenAPI/Swagger specs
├── migrations/       # Database migrations
├── deploy/           # Deployment configs (Docker, K8s)
├── scripts/          # Build and utility scripts
├── Makefile
├── go.mod
└── CLAUDE.md`

// GoAPI builds the Go RESTful API backend preset.
func GoAPI(loc doc.Locale) *doc.Config {
	p := loc.Pick
	return &doc.Config{
		ProjectName:   "my-go-api",
		ProjectDesc:   p("Go RESTful API 后端服务。", "Go RESTful API backend service."),
		ProjectType:   "Backend API Service",
		ProjectStatus: p("开发中", "Active development"),
		Role:          "senior Go backend engineer with expertise in high-performance API design, concurrency patterns, and production-grade systems",
		PersonaExtras: []string{
			"Write idiomatic Go — simple, readable, and explicit",
			"Prefer stdlib solutions over third-party libraries when reasonable",
			"Think about performance, but measure before optimizing",
			"When unsure about project conventions, read existing code in `internal/` first",
		},
		TechItems: []string{
			"**" + p("语言", "Language") + "**: Go 1.23+",
			"**" + p("HTTP 框架", "HTTP Framework") + "**: Gin / Echo / Chi",
			"**" + p("数据库", "Database") + "**: PostgreSQL + Redis",
			"**" + p("数据库访问", "DB Access") + "**: sqlx (" + p("优先原生 SQL", "prefer raw SQL over heavy ORM") + ")",
			"**" + p("迁移工具", "Migration") + "**: golang-migrate",
			"**" + p("配置", "Config") + "**: Viper / envconfig",
			"**" + p("日志", "Logging") + "**: slog (" + p("标准库结构化日志", "stdlib structured logging") + ")",
			"**" + p("可观测性", "Observability") + "**: OpenTelemetry + Prometheus",
			"**" + p("部署", "Deploy") + "**: Docker + Kubernetes",
			"**" + p("操作系统", "OS") + "**: Linux (Ubuntu 22.04+)",
		},
		Structure: p(goAPIStructureZH, goAPIStructureEN),
		Commands: []doc.Command{
			{Label: p("启动开发服务", "Run dev server"), Cmd: "go run ./cmd/server"},
			{Label: p("运行全部测试", "Run all tests"), Cmd: "go test ./..."},
			{Label: p("运行单个测试", "Run single test"), Cmd: "go test ./internal/service -run TestXxx -v"},
			{Label: p("代码检查", "Lint"), Cmd: "golangci-lint run ./..."},
			{Label: p("编译", "Build"), Cmd: "go build -o bin/server ./cmd/server"},
			{Label: p("数据库迁移", "Migration up"), Cmd: "migrate -path migrations -database $DB_URL up"},
			{Label: p("生成 Mock", "Generate mocks"), Cmd: "go generate ./..."},
		},
		CodeStyleRules: []string{
			p("遵循 Effective Go 和 Go Code Review Comments", "Follow Effective Go and Go Code Review Comments"),
			p("`gofmt` / `goimports` 格式化——不争论风格", "`gofmt` / `goimports` for formatting — never argue about style"),
			p("导出名称必须有文档注释", "Exported names must have doc comments"),
			p("函数不超过 50 行；超过则拆分", "Keep functions under 50 lines; split if longer"),
			p("使用 Table-Driven 测试", "Use table-driven tests"),
			p("错误信息：小写、无标点、用 `fmt.Errorf(\"doing x: %w\", err)` 包装", "Error messages: lowercase, no punctuation, wrap with `fmt.Errorf(\"doing x: %w\", err)`"),
			p("接口按行为命名: `Reader`, `Validator`，不用 `IReader`", "Name interfaces by behavior: `Reader`, `Validator`, not `IReader`"),
		},
		CoreRules: []string{
			p("始终处理错误——禁止用 `_` 丢弃 error", "Always handle errors — never use `_` to discard errors"),
			p("I/O 函数的第一个参数必须是 `context.Context`", "Use `context.Context` as first parameter in functions that do I/O"),
			p("打开资源后立即用 `defer` 关闭", "Close resources with `defer` immediately after opening"),
			p("禁止在 `init()` 中放非平凡逻辑", "Never use `init()` for non-trivial logic"),
			p("使用依赖注入；不使用全局可变状态", "Use dependency injection; no global mutable state"),
			p("所有 SQL 必须使用参数化查询（防 SQL 注入）", "All SQL must use parameterized queries (prevent SQL injection)"),
			p("HTTP Handler 必须校验和清理所有输入", "HTTP handlers must validate and sanitize all input"),
			p("共享状态的并发访问必须用 mutex 或 channel 保护", "Concurrent access to shared state must use mutexes or channels"),
		},
		Workflow: []string{
			p("先阅读相关代码，理解现有模式，再动手修改", "Read relevant code and understand existing patterns before making changes"),
			p("对非平凡功能，先制定计划并确认后再实现", "Create a plan and confirm before implementing non-trivial features"),
			p("修改代码时同步编写或更新测试", "Write or update tests alongside code changes"),
			p("运行 `golangci-lint run ./...` 确保无 lint 问题", "Run `golangci-lint run ./...` to verify no lint issues"),
			p("运行 `go test ./...` 确保无回归", "Run `go test ./...` to verify no regressions"),
			p("保持 commit 小且聚焦——一个逻辑变更一个 commit", "Keep commits small and focused — one logical change per commit"),
		},
		ThinkingStrategy: []string{
			p("接到复杂任务时，先用 think/ultrathink 规划方案，得到确认后再写代码", "For complex tasks, use think/ultrathink to plan first. Get confirmation before coding."),
			p("遇到不确定的项目约定时，先搜索 `internal/` 目录中的现有代码作为参考", "When unsure about conventions, search existing code in `internal/` for reference patterns"),
			p("修改公共接口前，先用 grep 查找所有调用方，评估影响范围", "Before changing public interfaces, grep all callers and assess impact"),
			p("如果任务涉及多个文件，先列出需要修改的文件清单", "If a task spans multiple files, list all files to change before starting"),
		},
		TestingRules: []string{
			p("用 Table-Driven 测试覆盖多输入场景", "Use table-driven tests for functions with multiple input/output cases"),
			p("用 `testify/assert` 或标准库 `testing` 做断言", "Use `testify/assert` or stdlib `testing` for assertions"),
			p("通过接口 Mock 外部依赖，不依赖具体实现", "Mock external dependencies with interfaces, not concrete types"),
			p("集成测试放在 `_test.go` 中，用 build tag `//go:build integration`", "Integration tests in `_test.go` files with build tag `//go:build integration`"),
			p("为性能关键路径编写 Benchmark: `func BenchmarkXxx(b *testing.B)`", "Benchmark critical paths with `func BenchmarkXxx(b *testing.B)`"),
		},
		ErrorHandling: []string{
			p("返回错误，不要 panic（除非真正不可恢复）", "Return errors, don't panic (except truly unrecoverable situations)"),
			p("用上下文包装错误: `fmt.Errorf(\"creating user: %w\", err)`", "Wrap errors with context: `fmt.Errorf(\"creating user: %w\", err)`"),
			p("用哨兵错误处理预期错误: `var ErrNotFound = errors.New(...)`", "Use sentinel errors for expected errors: `var ErrNotFound = errors.New(...)`"),
			p("在边界层（handler）记录日志，不在业务逻辑深处", "Log errors at the boundary (handler), not deep in business logic"),
			p("Handler 层将领域错误映射为对应 HTTP 状态码", "HTTP handlers: map domain errors to appropriate status codes"),
		},
		SecurityRules: []string{
			p("禁止硬编码密钥——使用环境变量或密钥管理器", "Never hardcode secrets — use environment variables or secret managers"),
			p("所有用户输入必须验证后再处理", "All user input must be validated before processing"),
			p("只使用参数化 SQL 查询——禁止字符串拼接 SQL", "Use parameterized SQL queries exclusively — NO string concatenation"),
			p("所有 HTTP 客户端和数据库连接必须设置超时", "Set timeouts on all HTTP clients and database connections"),
			p("对外接口实施限流", "Rate limit public-facing endpoints"),
		},
		GitRules: []string{
			p("分支命名: `feature/xxx`, `fix/xxx`, `refactor/xxx`", "Branch naming: `feature/xxx`, `fix/xxx`, `refactor/xxx`"),
			p("Commit 消息: Conventional Commits 格式 — `type(scope): description`", "Commit messages: Conventional Commits — `type(scope): description`"),
			p("始终在功能分支开发，禁止直接提交到 main", "Always work on feature branches, never commit directly to main"),
		},
		HardRules: []string{
			p("禁止提交密钥、API Key、密码或证书到仓库", "NEVER commit secrets, API keys, passwords, or certificates"),
			p("禁止在 `main()` 之外使用 `os.Exit()`", "NEVER use `os.Exit()` outside of `main()`"),
			p("禁止用 `panic()` 处理常规错误", "NEVER use `panic()` for normal error handling"),
			p("禁止用 `_` 忽略 error 返回值", "NEVER ignore errors with blank identifier `_`"),
			p("禁止未经批准使用 `unsafe` 包", "NEVER use `unsafe` package without explicit approval"),
			p("禁止手动修改生成的文件（protobuf, mock 等）", "NEVER modify generated files (protobuf, mocks) by hand"),
			p("禁止未经讨论添加新依赖", "NEVER add dependencies without discussing the rationale"),
		},
		Gotchas: []string{
			p("`internal/` 目录有 Go 包可见性限制——外部模块无法导入", "`internal/` enforces Go package visibility — external modules cannot import"),
			p("`context.Background()` 只在 `main()` 或顶层使用——其他地方必须传递 context", "`context.Background()` only in `main()` — pass context everywhere else"),
			p("注意 goroutine 泄漏——始终确保 goroutine 有退出路径", "Watch for goroutine leaks — always ensure goroutines can exit"),
			p("JSON struct tag 使用 snake_case: `json:\"field_name\"`", "JSON struct tags use snake_case: `json:\"field_name\"`"),
			p("时间处理: 始终使用 `time.Time` 和 `time.Duration`，不用裸整数", "Time: always use `time.Time` / `time.Duration`, never raw integers"),
		},
		Verification: []string{
			p("`golangci-lint run ./...` 通过，无报错", "`golangci-lint run ./...` passes with no errors"),
			p("`go test ./...` 全部通过", "`go test ./...` all pass"),
			p("`go build ./...` 编译成功", "`go build ./...` compiles successfully"),
			p("新增公共函数有文档注释", "New public functions have doc comments"),
			p("没有引入未讨论的新依赖", "No undiscussed new dependencies introduced"),
			p("没有硬编码的密钥或配置值", "No hardcoded secrets or config values"),
			p("修改过的代码有对应的测试覆盖", "Changed code has corresponding test coverage"),
		},
		References: []string{
			p("项目布局", "Project layout") + ": `cmd/`, `internal/`, `pkg/`",
			p("API 规范", "API spec") + ": `api/openapi.yaml`",
			p("部署配置", "Deployment") + ": `deploy/` (Dockerfile, K8s)",
			p("业务逻辑示例", "Business logic examples") + ": `internal/service/`",
		},
	}
}
