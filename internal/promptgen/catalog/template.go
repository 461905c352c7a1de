// Package catalog holds the prompt template collection: the built-in
// set plus user-defined templates persisted under the home directory.
package catalog

// Template is one prompt template. Variables lists the placeholder
// names that get collected and substituted, in prompt order; the text
// references them as {name}.
type Template struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Variables   []string `json:"variables"`
	Text        string   `json:"template"`
}
