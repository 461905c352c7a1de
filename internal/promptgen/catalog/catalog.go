package catalog

import (
	"sort"
	"strings"
)

// Catalog is the merged view of built-in and custom templates. Custom
// templates shadow built-ins with the same id. Iteration order is fixed:
// built-ins in declared order, then custom-only ids sorted.
type Catalog struct {
	templates map[string]Template
	order     []string
	custom    map[string]bool
}

// Merge builds a catalog from the built-in set plus the store's custom
// templates.
func Merge(store *Store) *Catalog {
	c := &Catalog{
		templates: make(map[string]Template, len(builtins)),
		custom:    make(map[string]bool),
	}
	for _, id := range builtinOrder {
		t := builtins[id]
		t.ID = id
		c.templates[id] = t
		c.order = append(c.order, id)
	}

	var extra []string
	for id, t := range store.Load() {
		if _, shadows := c.templates[id]; !shadows {
			extra = append(extra, id)
		}
		c.templates[id] = t
		c.custom[id] = true
	}
	sort.Strings(extra)
	c.order = append(c.order, extra...)
	return c
}

// Get looks up a template by id.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// IsCustom reports whether the template under id came from the store.
func (c *Catalog) IsCustom(id string) bool { return c.custom[id] }

// Len returns the number of distinct template ids.
func (c *Catalog) Len() int { return len(c.order) }

// All returns every template in catalog order.
func (c *Catalog) All() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}

// Categories returns the distinct category names, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, t := range c.templates {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the templates in one category, in catalog order.
func (c *Catalog) ByCategory(category string) []Template {
	var out []Template
	for _, id := range c.order {
		if t := c.templates[id]; t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Search returns templates whose id, name, description, category, or
// body contains the keyword, case-insensitively, in catalog order.
// There is no ranking; order alone breaks ties.
func (c *Catalog) Search(keyword string) []Template {
	kw := strings.ToLower(keyword)
	var out []Template
	for _, id := range c.order {
		t := c.templates[id]
		hay := strings.ToLower(strings.Join([]string{
			t.ID, t.Name, t.Description, t.Category, t.Text,
		}, "\n"))
		if strings.Contains(hay, kw) {
			out = append(out, t)
		}
	}
	return out
}

// Suggest returns ids that contain the given (unknown) id as a
// substring, for "did you mean" hints.
func (c *Catalog) Suggest(id string) []string {
	needle := strings.ToLower(id)
	var out []string
	for _, candidate := range c.order {
		if strings.Contains(strings.ToLower(candidate), needle) {
			out = append(out, candidate)
		}
	}
	return out
}
