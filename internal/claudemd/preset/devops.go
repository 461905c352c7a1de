package preset

import "github.com/yinchengxin/claudekit/internal/claudemd/doc"

const devopsStructureZH = `.
├── terraform/
│   ├── modules/        # 可复用 TF 模块
│   ├── environments/   # 按环境区分配置
│   │   ├── dev/
│   │   ├── staging/
│   │   └── prod/
│   └── global/         # 全局共享资源
├── ansible/
│   ├── roles/
│   ├── playbooks/
│   └── inventory/
├── k8s/
│   ├── base/           # Kustomize base
│   └── overlays/       # 按环境覆盖层
├── docker/
├── scripts/            # 运维脚本
├── .github/workflows/  # CI/CD
├── Makefile
└── CLAUDE.md`

const devopsStructureEN = `.
├── terraform/
│   ├── modules/        # Reusable TF modules
│   ├── environments/   # Per-environment configs
│   │   ├── dev/
│   │   ├── staging/
│   │   └── prod/
│   └── global/         # Global shared resources
├── ansible/
│   ├── roles/
│   ├── playbooks/
│   └── inventory/
├── k8s/
│   ├── base/           # Kustomize base
│   └── overlays/       # Per-env overlays
├── docker/
├── scripts/            # Operational scripts
├── .github/workflows/  # CI/CD
├── Makefile
└── CLAUDE.md`

// DevOps builds the infrastructure-as-code preset.
func DevOps(loc doc.Locale) *doc.Config {
	p := loc.Pick
	return &doc.Config{
		ProjectName:   "infra",
		ProjectDesc:   p("基础设施即代码与 DevOps 自动化。", "Infrastructure as Code and DevOps automation."),
		ProjectType:   "DevOps / Infrastructure",
		ProjectStatus: p("运行中", "Active"),
		Role:          "senior DevOps/SRE engineer with deep expertise in Linux, containers, Kubernetes, CI/CD, monitoring, and infrastructure automation",
		PersonaExtras: []string{
			p("每次变更都要考虑幂等性、可靠性和回滚方案", "Think about idempotency, reliability, and rollback for every change"),
			p("做两次以上的事情就要自动化", "Automate everything done more than twice"),
			p("基础设施即代码——版本控制、审查、测试", "Treat infrastructure as code — version control, review, test"),
			p("变更前评估影响范围（爆炸半径）", "Always consider blast radius before applying changes"),
		},
		TechItems: []string{
			"**" + p("云平台", "Cloud") + "**: AWS / GCP / Azure",
			"**IaC**: Terraform",
			"**" + p("配置管理", "Config Mgmt") + "**: Ansible",
			"**" + p("容器", "Container") + "**: Docker + containerd",
			"**" + p("编排", "Orchestration") + "**: Kubernetes (EKS/GKE/AKS)",
			"**CI/CD**: GitHub Actions / GitLab CI",
			"**" + p("监控", "Monitoring") + "**: Prometheus + Grafana + AlertManager",
			"**" + p("日志", "Logging") + "**: Loki / ELK",
			"**" + p("密钥管理", "Secrets") + "**: Vault / AWS Secrets Manager",
			"**" + p("脚本", "Scripting") + "**: Bash, Python, Go",
			"**" + p("操作系统", "OS") + "**: Ubuntu 22.04 / Amazon Linux 2023",
		},
		Structure: p(devopsStructureZH, devopsStructureEN),
		Commands: []doc.Command{
			{Label: p("TF 初始化", "TF init"), Cmd: "cd terraform/environments/dev && terraform init"},
			{Label: p("TF 计划", "TF plan"), Cmd: "terraform plan -var-file=terraform.tfvars"},
			{Label: p("TF 执行", "TF apply"), Cmd: "terraform apply -var-file=terraform.tfvars"},
			{Label: p("Ansible 检测", "Ansible ping"), Cmd: "ansible all -m ping -i ansible/inventory/dev"},
			{Label: p("Ansible 执行", "Ansible playbook"), Cmd: "ansible-playbook -i ansible/inventory/dev ansible/playbooks/site.yml"},
			{Label: p("K8s 部署", "K8s apply"), Cmd: "kubectl apply -k k8s/overlays/dev/"},
			{Label: p("Docker 构建", "Docker build"), Cmd: "docker build -t app:latest -f docker/Dockerfile ."},
			{Label: p("TF 格式化", "TF format"), Cmd: "terraform fmt -check -recursive"},
			{Label: p("Shell 检查", "Shell lint"), Cmd: "shellcheck scripts/*.sh"},
		},
		CodeStyleRules: []string{
			p("Shell 脚本: 开头必须 `set -euo pipefail`", "Shell scripts: `set -euo pipefail` at the top"),
			p("Shell 脚本: 必须通过 `shellcheck`", "Shell scripts: must pass `shellcheck`"),
			p("Terraform: `terraform fmt` 格式化，`tflint` 检查", "Terraform: `terraform fmt` + `tflint`"),
			p("YAML: 2 空格缩进，不用 Tab", "YAML: 2-space indent, no tabs"),
			p("命名: 资源用 snake_case, K8s 对象用 kebab-case", "Naming: snake_case for resources, kebab-case for k8s objects"),
		},
		CoreRules: []string{
			p("所有基础设施变更必须通过代码审查 (PR)", "ALL infrastructure changes must go through PR review"),
			p("执行 `terraform apply` 前必须先 `plan` 并审查", "ALWAYS run `terraform plan` and review before `terraform apply`"),
			p("生产环境变更必须有回滚方案", "Production changes must have a documented rollback plan"),
			p("用模块封装可复用基础设施——禁止复制粘贴", "Use modules for reusable infrastructure — don't copy-paste"),
			p("所有云资源打标签: environment, team, managed-by", "Tag all cloud resources: environment, team, managed-by"),
			p("Terraform 状态必须用远端存储 + 锁", "Use remote state with locking for Terraform"),
			p("密钥必须在 Vault 或云密钥管理器中，禁止写在代码里", "Secrets must be in Vault or cloud secret managers, never in code"),
		},
		Workflow: []string{
			p("先了解当前基础设施状态和模块结构", "Read the current infrastructure state and module structure first"),
			p("制定变更计划：影响哪些模块、哪些环境、回滚步骤", "Plan: which modules, which environments, rollback steps"),
			p("按 dev → staging → prod 顺序逐环境应用", "Apply in dev → staging → prod order"),
			p("每个环境变更后运行冒烟测试验证", "Verify with smoke tests after each environment"),
			p("变更完成后更新文档和 runbook", "Update docs and runbooks after changes"),
		},
		ThinkingStrategy: []string{
			p("变更基础设施前，先列出影响的资源和依赖关系", "Before infra changes, list affected resources and dependencies"),
			p("高风险操作（删除、迁移状态）前，先确认备份和回滚方案", "Before high-risk ops (destroy, state mv), confirm backup and rollback"),
			p("不确定时，先用 `terraform plan` 输出评估影响", "When unsure, assess impact with `terraform plan` output first"),
			p("跨环境变更时，先在 dev 验证，确认后再推进", "For cross-env changes, validate in dev first before proceeding"),
		},
		TestingRules: []string{
			p("`terraform validate` + `tflint` 检查所有 TF 代码", "`terraform validate` + `tflint` on all TF code"),
			p("`tfsec` / `checkov` 安全扫描", "`tfsec` / `checkov` for security scanning"),
			p("Shell 脚本: `shellcheck` + `bats` 测试框架", "Shell scripts: `shellcheck` + `bats` testing"),
			p("Ansible: `molecule` 测试角色", "Ansible: `molecule` for role testing"),
		},
		ErrorHandling: []string{
			p("Shell: `set -e` 快速失败; `trap` 清理资源", "Shell: `set -e` fail fast; `trap` for cleanup"),
			p("Terraform: 隐式依赖不够时显式使用 `depends_on`", "Terraform: use `depends_on` explicitly when implicit deps aren't enough"),
			p("始终有回滚方案: 上一版 TF 状态、上一版 K8s 清单", "Always have rollback: previous TF state, previous K8s manifests"),
		},
		SecurityRules: []string{
			p("禁止在 Terraform/Ansible/脚本中硬编码密钥", "NEVER hardcode secrets in Terraform, Ansible, or scripts"),
			p("IAM 最小权限——生产环境禁止 wildcard (*)", "Least-privilege IAM — no wildcard (*) in production"),
			p("所有存储和数据库启用静态加密 + 传输加密", "Enable encryption at rest and in transit for all data stores"),
			p("Docker 镜像漏洞扫描 (Trivy/Snyk)", "Scan Docker images for vulnerabilities (Trivy/Snyk)"),
			p("网络: 默认拒绝，仅放行所需流量", "Network: default-deny; allow only required traffic"),
		},
		GitRules: []string{
			p("分支: `infra/xxx` 用于基础设施变更", "Branch: `infra/xxx` for infrastructure changes"),
			p("Conventional Commits: `infra(scope): description`", "Conventional Commits: `infra(scope): description`"),
			p("PR 描述中包含 `terraform plan` 输出", "Include `terraform plan` output in PR description"),
		},
		HardRules: []string{
			p("禁止未经审查的 plan 直接 apply 到生产", "NEVER `terraform apply` on prod without a reviewed plan"),
			p("禁止提交密钥、Token 或私钥", "NEVER commit secrets, tokens, or private keys"),
			p("禁止使用 `chmod 777`", "NEVER use `chmod 777`"),
			p("禁止未备份就删除有状态资源（数据库、S3）", "NEVER delete stateful resources without backup verification"),
			p("禁止关闭安全功能（防火墙、SELinux）来排障", "NEVER disable security features as a troubleshooting step"),
			p("禁止用 `curl | bash` 安装生产软件", "NEVER use `curl | bash` for production software"),
			p("禁止在版本控制之外修改生产基础设施", "NEVER modify production infra outside version-controlled IaC"),
		},
		Gotchas: []string{
			p("Terraform state 含敏感数据——加密且限制访问", "Terraform state contains secrets — encrypt and restrict access"),
			p("`terraform destroy` 对有状态资源不可逆——反复确认", "`terraform destroy` is irreversible for stateful resources"),
			p("K8s `default` 命名空间不应跑工作负载", "K8s `default` namespace should not run workloads"),
			p("Ansible `become: yes` 以 root 执行——注意文件权限", "Ansible `become: yes` runs as root — watch file permissions"),
		},
		Verification: []string{
			p("`terraform fmt -check` 通过", "`terraform fmt -check` passes"),
			p("`terraform validate` 通过", "`terraform validate` passes"),
			p("`tflint` 无错误", "`tflint` has no errors"),
			p("`shellcheck scripts/*.sh` 通过", "`shellcheck scripts/*.sh` passes"),
			p("没有硬编码的密钥或 IP 地址", "No hardcoded secrets or IP addresses"),
			p("云资源标签完整", "Cloud resource tags are complete"),
			p("变更有对应的回滚步骤记录", "Changes have documented rollback steps"),
		},
		References: []string{
			p("TF 模块", "TF modules") + ": `terraform/modules/`",
			p("环境配置", "Env configs") + ": `terraform/environments/{env}/`",
			p("K8s 清单", "K8s manifests") + ": `k8s/` (Kustomize overlays)",
			p("运维脚本", "Scripts") + ": `scripts/`",
		},
	}
}
