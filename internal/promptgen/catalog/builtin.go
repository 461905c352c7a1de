package catalog

// builtinOrder preserves the declared listing order of the built-in
// templates. Merged catalogs and exports iterate in this order.
var builtinOrder = []string{
	"code_review", "api_design", "write_function", "debug_help",
	"unit_test", "refactor",
	"sql_optimize", "db_schema_design",
	"incident_analysis", "dockerfile", "k8s_manifest", "cicd_pipeline",
	"nginx_config", "monitoring_alert",
	"system_design", "tech_selection",
	"tech_doc", "commit_message", "explain_code",
	"general_query", "performance_optimize",
}

var builtins = map[string]Template{
	"code_review": {
		Name:        "代码审查",
		Category:    "开发",
		Description: "全方位代码审查（安全、性能、可维护性、并发）",
		Variables:   []string{"language", "code"},
		Text: `请审查以下 {language} 代码，从这些维度进行评估：

1. **安全性**：SQL注入、XSS、敏感信息泄露、权限校验缺失
2. **性能**：N+1 查询、内存泄漏、不必要的拷贝、算法复杂度
3. **可维护性**：命名规范、函数拆分、错误处理、代码重复
4. **并发安全**：数据竞争、死锁风险、goroutine 泄漏

对每个问题：
- 指出具体位置（行号或函数名）
- 说明风险等级（高/中/低）
- 给出修复后的代码

<code>
{code}
</code>`,
	},
	"api_design": {
		Name:        "RESTful API 设计",
		Category:    "开发",
		Description: "设计规范的 RESTful API 接口",
		Variables:   []string{"resource", "tech_stack", "requirements"},
		Text: `请为 {resource} 资源设计一套完整的 RESTful API。

技术栈：{tech_stack}

业务需求：
{requirements}

请输出：
1. API 端点列表（方法 + 路径 + 说明）
2. 请求/响应的 JSON Schema
3. 错误码定义
4. 认证/授权方案
5. 分页、过滤、排序的参数设计
6. 示例的 cURL 请求`,
	},
	"write_function": {
		Name:        "编写函数/方法",
		Category:    "开发",
		Description: "按需求编写高质量函数",
		Variables:   []string{"language", "function_desc", "constraints"},
		Text: `请用 {language} 编写一个函数，功能如下：

{function_desc}

约束条件：
{constraints}

要求：
- 包含完整的错误处理
- 添加必要的注释
- 编写对应的单元测试（至少覆盖正常路径 + 2 个边界情况）
- 分析时间和空间复杂度`,
	},
	"debug_help": {
		Name:        "调试求助",
		Category:    "开发",
		Description: "分析错误日志或异常行为",
		Variables:   []string{"language", "error_info", "code_context"},
		Text: `我在 {language} 项目中遇到以下问题，请帮我分析。

错误信息/异常表现：
{error_info}

相关代码：
<code>
{code_context}
</code>

请：
1. 分析错误的根本原因
2. 给出修复方案（附代码）
3. 解释为什么会出现这个问题
4. 建议如何避免类似问题再次发生`,
	},
	"unit_test": {
		Name:        "编写单元测试",
		Category:    "开发",
		Description: "为已有代码生成完整的单元测试",
		Variables:   []string{"language", "test_framework", "code"},
		Text: `请为以下 {language} 代码编写单元测试。

测试框架：{test_framework}

<code>
{code}
</code>

要求：
- 覆盖所有公开方法
- 包含正常路径、边界情况、错误路径的测试用例
- 使用 Table-Driven 测试风格（如果语言支持）
- Mock 外部依赖
- 每个测试用例有清晰的命名，说明测试意图`,
	},
	"refactor": {
		Name:        "代码重构",
		Category:    "开发",
		Description: "分析并重构代码以提升质量",
		Variables:   []string{"language", "refactor_goal", "code"},
		Text: `请重构以下 {language} 代码。

重构目标：{refactor_goal}

<code>
{code}
</code>

请：
1. 指出当前代码的问题
2. 给出重构后的完整代码
3. 解释每个重构决策的理由
4. 确保重构后功能不变（列出需要验证的测试点）`,
	},
	"sql_optimize": {
		Name:        "SQL 优化",
		Category:    "数据库",
		Description: "分析并优化 SQL 查询性能",
		Variables:   []string{"database", "sql", "table_schema"},
		Text: "请优化以下 SQL 查询。\n\n数据库：{database}\n\n表结构：\n{table_schema}\n\n待优化 SQL：\n```sql\n{sql}\n```\n\n请：\n1. 分析当前 SQL 的执行计划（预估）\n2. 指出性能瓶颈\n3. 给出优化后的 SQL\n4. 建议需要添加的索引\n5. 如果数据量很大，给出分页/分批方案",
	},
	"db_schema_design": {
		Name:        "数据库表设计",
		Category:    "数据库",
		Description: "根据业务需求设计数据库 Schema",
		Variables:   []string{"database", "business_desc", "scale"},
		Text: `请根据以下业务需求设计数据库表结构。

数据库类型：{database}
业务描述：{business_desc}
预估数据规模：{scale}

请输出：
1. 完整的 CREATE TABLE DDL
2. 索引设计及理由
3. 表关系 ER 图（用 mermaid 语法）
4. 针对高频查询的优化建议
5. 数据归档/分表策略（如果需要）`,
	},
	"incident_analysis": {
		Name:        "故障排查",
		Category:    "运维",
		Description: "系统故障的根因分析和应急处理",
		Variables:   []string{"symptom", "environment", "known_info"},
		Text: `<role>你是一个资深 SRE 工程师</role>

<incident>
现象：{symptom}
环境：{environment}
已知信息：{known_info}
</incident>

请按以下步骤处理：
1. 列出可能的根因（按概率从高到低排序）
2. 对每个根因给出验证命令或排查步骤
3. 给出临时缓解措施（止血）
4. 给出根本修复方案
5. 建议后续的预防措施和监控告警配置`,
	},
	"dockerfile": {
		Name:        "Dockerfile 编写",
		Category:    "运维",
		Description: "编写生产级 Dockerfile",
		Variables:   []string{"language", "app_desc", "requirements"},
		Text: `请为以下应用编写生产级 Dockerfile。

语言/框架：{language}
应用描述：{app_desc}
特殊要求：{requirements}

要求：
- 使用多阶段构建，最小化镜像体积
- 使用非 root 用户运行
- 合理利用缓存层
- 包含健康检查
- 添加必要的 LABEL
- 附带 .dockerignore 文件内容
- 给出构建和运行命令`,
	},
	"k8s_manifest": {
		Name:        "K8s 资源清单",
		Category:    "运维",
		Description: "生成 Kubernetes 部署资源清单",
		Variables:   []string{"app_name", "image", "requirements"},
		Text: `请为应用 {app_name} 生成 Kubernetes 部署清单。

镜像：{image}
要求：{requirements}

请生成以下资源的 YAML：
1. Deployment（含资源限制、健康检查、滚动更新策略）
2. Service
3. HPA（自动伸缩）
4. ConfigMap / Secret（如需要）
5. Ingress（如需要）

每个资源附带关键配置项的注释说明。`,
	},
	"cicd_pipeline": {
		Name:        "CI/CD 流水线",
		Category:    "运维",
		Description: "设计 CI/CD 流水线配置",
		Variables:   []string{"ci_platform", "tech_stack", "requirements"},
		Text: `请为以下项目设计 CI/CD 流水线。

CI 平台：{ci_platform}
技术栈：{tech_stack}
要求：{requirements}

请输出：
1. 完整的流水线配置文件
2. 各阶段说明（lint → test → build → deploy）
3. 缓存优化策略
4. 安全扫描集成
5. 环境分支策略（dev/staging/prod）`,
	},
	"nginx_config": {
		Name:        "Nginx 配置",
		Category:    "运维",
		Description: "生成 Nginx 配置文件",
		Variables:   []string{"scenario", "requirements"},
		Text: `请生成 Nginx 配置文件。

使用场景：{scenario}
具体要求：{requirements}

请输出：
- 完整的可直接使用的 nginx.conf
- 关键配置项的注释说明
- 性能调优建议
- 安全加固建议（如 Header 设置、限流等）`,
	},
	"monitoring_alert": {
		Name:        "监控告警配置",
		Category:    "运维",
		Description: "设计监控指标和告警规则",
		Variables:   []string{"system", "monitoring_tool", "sla"},
		Text: `请为 {system} 设计监控和告警方案。

监控工具：{monitoring_tool}
SLA 要求：{sla}

请输出：
1. 关键监控指标列表（黄金信号：延迟、流量、错误率、饱和度）
2. 告警规则配置（含阈值、持续时间、告警等级）
3. Dashboard 设计建议
4. 告警通知策略（升级路径）
5. 常见的误报场景和处理建议`,
	},
	"system_design": {
		Name:        "系统架构设计",
		Category:    "架构",
		Description: "系统级架构设计方案",
		Variables:   []string{"system_name", "business_scenario", "nfr"},
		Text: `请设计 {system_name} 的系统架构方案。

业务场景：{business_scenario}

非功能性需求：
{nfr}

请输出：
1. 架构概览图（mermaid 语法）
2. 核心组件设计及职责
3. 数据流说明
4. 关键技术选型（对比至少 2 个选项，说明取舍）
5. 容量规划
6. 高可用和容灾方案
7. 潜在风险及应对措施`,
	},
	"tech_selection": {
		Name:        "技术选型对比",
		Category:    "架构",
		Description: "对比分析多种技术方案",
		Variables:   []string{"scenario", "candidates", "constraints"},
		Text: `场景：{scenario}
候选方案：{candidates}
约束条件：{constraints}

请从以下维度对比分析：
1. 功能满足度
2. 性能表现
3. 学习曲线和社区生态
4. 运维复杂度
5. 成本（许可证/资源消耗）
6. 团队现有经验匹配度

输出格式：对比表格 + 最终推荐 + 推荐理由`,
	},
	"tech_doc": {
		Name:        "技术文档",
		Category:    "文档",
		Description: "生成技术设计文档或 README",
		Variables:   []string{"doc_type", "project", "content_scope"},
		Text: `请为 {project} 编写 {doc_type}。

需要覆盖的内容：{content_scope}

要求：
- 语言简洁专业
- 包含代码示例
- 使用 Markdown 格式
- 适合团队内部共享阅读`,
	},
	"commit_message": {
		Name:        "Git Commit Message",
		Category:    "文档",
		Description: "根据代码变更生成规范的 Commit Message",
		Variables:   []string{"changes"},
		Text: `请根据以下代码变更生成符合 Conventional Commits 规范的 commit message。

变更内容：
{changes}

格式要求：
- type(scope): subject
- 空行
- body（解释 what 和 why，不是 how）
- 空行
- footer（Breaking Changes, Issue 引用等）

type 选择：feat/fix/refactor/perf/test/docs/chore/ci
subject: 不超过 50 个字符，使用祈使语气`,
	},
	"explain_code": {
		Name:        "代码解释",
		Category:    "开发",
		Description: "解释复杂代码的工作原理",
		Variables:   []string{"language", "code"},
		Text: `请详细解释以下 {language} 代码的工作原理。

<code>
{code}
</code>

请：
1. 概述这段代码的整体功能
2. 逐段解释关键逻辑
3. 说明使用了哪些设计模式或编程技巧
4. 指出潜在的问题或可以改进的地方
5. 用通俗易懂的语言，假设读者有基本编程基础但不熟悉这个领域`,
	},
	"general_query": {
		Name:        "通用技术查询",
		Category:    "通用",
		Description: "通用的技术问题查询模板",
		Variables:   []string{"topic", "specific_question", "context"},
		Text: `<role>你是一个资深全栈工程师，擅长 {topic}</role>

<context>
{context}
</context>

<question>
{specific_question}
</question>

请：
- 直接回答问题
- 给出具体的代码示例或命令
- 如有多种方案，说明各自的优缺点
- 注明适用的版本或环境`,
	},
	"performance_optimize": {
		Name:        "性能优化",
		Category:    "开发",
		Description: "分析和优化系统/代码性能",
		Variables:   []string{"system_desc", "current_metrics", "target_metrics"},
		Text: `请帮我优化以下系统的性能。

系统描述：{system_desc}
当前性能指标：{current_metrics}
目标性能指标：{target_metrics}

请：
1. 分析当前瓶颈点
2. 按投入产出比排序给出优化方案
3. 每个方案包含：具体操作步骤、预期提升、风险评估
4. 给出性能测试/压测方案来验证优化效果`,
	},
}

// IsBuiltin reports whether id names a built-in template. Built-ins can
// be shadowed by custom templates but never deleted.
func IsBuiltin(id string) bool {
	_, ok := builtins[id]
	return ok
}
