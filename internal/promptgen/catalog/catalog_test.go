package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "custom_templates.json"))
}

func TestBuiltinCount(t *testing.T) {
	if len(builtinOrder) != 21 || len(builtins) != 21 {
		t.Fatalf("builtins = %d ids, %d entries, want 21", len(builtinOrder), len(builtins))
	}
	for _, id := range builtinOrder {
		if _, ok := builtins[id]; !ok {
			t.Errorf("order names %q but no template exists", id)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := tempStore(t)
	want := Template{
		ID:          "my_prompt",
		Name:        "我的模板",
		Category:    "自定义",
		Description: "test template",
		Variables:   []string{"topic"},
		Text:        "讲讲 {topic}",
	}
	if err := s.Add(want); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := NewStore(s.Path()).Load()["my_prompt"]
	if !ok {
		t.Fatal("template missing after reload")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreMissingAndMalformed(t *testing.T) {
	if got := tempStore(t).Load(); len(got) != 0 {
		t.Errorf("missing file: Load() = %v, want empty", got)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewStore(path).Load(); len(got) != 0 {
		t.Errorf("malformed file: Load() = %v, want empty", got)
	}
}

func TestDeleteBuiltinRejected(t *testing.T) {
	s := tempStore(t)
	if err := s.Delete("code_review"); err == nil {
		t.Error("deleting a built-in succeeded")
	}
	if err := s.Delete("no_such_id"); err == nil {
		t.Error("deleting an unknown id succeeded")
	}
}

func TestDeleteCustom(t *testing.T) {
	s := tempStore(t)
	if err := s.Add(Template{ID: "mine", Name: "x", Category: "c", Text: "t"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("mine"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Load()["mine"]; ok {
		t.Error("template still present after delete")
	}
}

func TestMergeOrderAndShadowing(t *testing.T) {
	s := tempStore(t)
	if err := s.Add(Template{ID: "zz_custom", Name: "z", Category: "c", Text: "t"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Template{ID: "aa_custom", Name: "a", Category: "c", Text: "t"}); err != nil {
		t.Fatal(err)
	}
	// Shadow a built-in.
	if err := s.Add(Template{ID: "code_review", Name: "自定义审查", Category: "c", Text: "shadowed"}); err != nil {
		t.Fatal(err)
	}

	c := Merge(s)
	if c.Len() != 23 {
		t.Errorf("Len() = %d, want 21 builtins + 2 customs", c.Len())
	}

	all := c.All()
	if all[0].ID != "code_review" {
		t.Errorf("first template %q, want code_review in builtin position", all[0].ID)
	}
	if all[0].Text != "shadowed" {
		t.Error("custom template did not shadow the built-in body")
	}
	if !c.IsCustom("code_review") || c.IsCustom("api_design") {
		t.Error("IsCustom misreports shadowed or plain built-ins")
	}
	// Custom-only ids come after all builtins, sorted.
	n := len(all)
	if all[n-2].ID != "aa_custom" || all[n-1].ID != "zz_custom" {
		t.Errorf("custom tail = %q, %q, want aa_custom, zz_custom", all[n-2].ID, all[n-1].ID)
	}
}

func TestSearchDatabaseKeyword(t *testing.T) {
	c := Merge(tempStore(t))
	got := make(map[string]bool)
	for _, tmpl := range c.Search("数据库") {
		got[tmpl.ID] = true
	}
	for _, want := range []string{"sql_optimize", "db_schema_design"} {
		if !got[want] {
			t.Errorf("search 数据库 missing %s, got %v", want, got)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	c := Merge(tempStore(t))
	if len(c.Search("SQL")) == 0 {
		t.Error("uppercase keyword found nothing")
	}
	if len(c.Search("zzzz_nothing")) != 0 {
		t.Error("bogus keyword matched")
	}
}

func TestByCategory(t *testing.T) {
	c := Merge(tempStore(t))
	db := c.ByCategory("数据库")
	if len(db) != 2 {
		t.Errorf("数据库 category has %d templates, want 2", len(db))
	}
	cats := c.Categories()
	want := []string{"开发", "数据库", "文档", "架构", "运维", "通用"}
	if len(cats) != len(want) {
		t.Errorf("Categories() = %v", cats)
	}
}

func TestSuggest(t *testing.T) {
	c := Merge(tempStore(t))
	got := c.Suggest("sql")
	if len(got) != 1 || got[0] != "sql_optimize" {
		t.Errorf("Suggest(sql) = %v", got)
	}
}
