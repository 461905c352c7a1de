// Package preset provides fully pre-populated document configurations
// that bypass the interactive wizard.
package preset

import "github.com/yinchengxin/claudekit/internal/claudemd/doc"

// Factory builds a complete config for one locale.
type Factory func(loc doc.Locale) *doc.Config

// factories holds the presets with full built-in content, in listing order.
var factoryOrder = []string{"go-api", "devops"}

var factories = map[string]Factory{
	"go-api": GoAPI,
	"devops": DevOps,
}

// Meta describes a preset that is only named, not yet fully built in.
// quick rejects these with a pointer at the wizard.
type Meta struct {
	Key    string
	DescZH string
	DescEN string
}

// Desc returns the localized one-line description.
func (m Meta) Desc(loc doc.Locale) string {
	return loc.Pick(m.DescZH, m.DescEN)
}

// Built describes the fully implemented presets, in listing order.
var Built = []Meta{
	{"go-api", "Go RESTful API 后端", "Go RESTful API backend"},
	{"devops", "DevOps / 基础设施项目", "DevOps / Infrastructure project"},
}

// Planned lists the preset names reserved for future factories.
var Planned = []Meta{
	{"go-cli", "Go CLI 工具", "Go CLI Tool"},
	{"python-api", "Python FastAPI 后端", "Python FastAPI Backend"},
	{"python-data", "Python 数据工程", "Python Data Engineering"},
	{"fullstack", "全栈 Web 应用", "Full-Stack Web App"},
	{"microservice", "微服务架构", "Microservices"},
	{"monorepo", "Monorepo 多模块", "Monorepo"},
	{"k8s-operator", "Kubernetes Operator", "Kubernetes Operator"},
	{"terraform", "Terraform IaC", "Terraform IaC"},
}

// Names returns the fully built preset names in listing order.
func Names() []string {
	out := make([]string, len(factoryOrder))
	copy(out, factoryOrder)
	return out
}

// Get builds the named preset, or returns false for unknown or
// not-yet-built names.
func Get(name string, loc doc.Locale) (*doc.Config, bool) {
	f, ok := factories[name]
	if !ok {
		return nil, false
	}
	return f(loc), true
}
