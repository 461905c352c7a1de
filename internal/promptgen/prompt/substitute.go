// Package prompt renders templates and builds free-form prompts.
package prompt

import (
	"regexp"
	"strings"
)

// longForm lists the variables that usually carry pasted multi-line
// content (code, SQL, schemas). Collection switches to line mode for
// these.
var longForm = map[string]bool{
	"code":          true,
	"code_context":  true,
	"sql":           true,
	"table_schema":  true,
	"changes":       true,
	"requirements":  true,
	"nfr":           true,
	"error_info":    true,
	"known_info":    true,
	"content_scope": true,
	"business_desc": true,
}

// IsLongForm reports whether a variable should be collected as
// multi-line input.
func IsLongForm(name string) bool { return longForm[name] }

// Substitute replaces each declared variable's {name} placeholder with
// its value. Braced text that is not a declared variable passes through
// untouched, so templates can contain literal {examples}.
func Substitute(text string, variables []string, values map[string]string) string {
	for _, name := range variables {
		text = strings.ReplaceAll(text, "{"+name+"}", values[name])
	}
	return text
}

var (
	varPattern = regexp.MustCompile(`\{(\w+)\}`)
	idPattern  = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
)

// ExtractVariables scans text for {name} placeholders, deduplicated in
// first-appearance order.
func ExtractVariables(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range varPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// ValidID reports whether id is usable as a template id: a letter or
// underscore followed by word characters.
func ValidID(id string) bool { return idPattern.MatchString(id) }
