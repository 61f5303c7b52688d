package postzaper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "tools.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testTools = []Tool{
	{Slug: "thread-maker", Name: "Thread Maker", Summary: "Split drafts", Category: "Twitter"},
	{Slug: "post-formatter", Name: "Post Formatter", Summary: "Bold and italics", Category: "linkedin"},
	{Slug: "hook-generator", Name: "Hook Generator", Summary: "Openers", Category: "linkedin"},
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetTool(t *testing.T) {
	s := setupTestStore(t)

	tool := Tool{Slug: "thread-maker", Name: "Thread Maker", Summary: "Split drafts", Category: " Twitter ", Position: 2}
	if err := s.SaveTool(tool); err != nil {
		t.Fatalf("SaveTool failed: %v", err)
	}

	got, err := s.GetTool("thread-maker")
	if err != nil {
		t.Fatalf("GetTool failed: %v", err)
	}
	if got.Name != tool.Name {
		t.Errorf("Name = %q, want %q", got.Name, tool.Name)
	}
	if got.Summary != tool.Summary {
		t.Errorf("Summary = %q, want %q", got.Summary, tool.Summary)
	}
	if got.Category != "twitter" {
		t.Errorf("Category = %q, want %q", got.Category, "twitter")
	}
	if got.Position != 2 {
		t.Errorf("Position = %d, want 2", got.Position)
	}
	if got.Link() != "/tools/thread-maker" {
		t.Errorf("Link = %q", got.Link())
	}
}

func TestGetToolNotFound(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.GetTool("missing"); err != sql.ErrNoRows {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestReplaceAllKeepsOrder(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll(testTools); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	tools, err := s.ListTools("")
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools) != 3 {
		t.Fatalf("len = %d, want 3", len(tools))
	}
	for i, want := range []string{"thread-maker", "post-formatter", "hook-generator"} {
		if tools[i].Slug != want {
			t.Errorf("tools[%d] = %q, want %q", i, tools[i].Slug, want)
		}
	}

	slugs, err := s.ListSlugs(context.Background())
	if err != nil {
		t.Fatalf("ListSlugs failed: %v", err)
	}
	if len(slugs) != 3 || slugs[0] != "thread-maker" || slugs[2] != "hook-generator" {
		t.Errorf("ListSlugs = %v", slugs)
	}

	if err := s.ReplaceAll(testTools[:1]); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count after replace = %d, want 1", n)
	}
}

func TestListToolsByCategory(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll(testTools); err != nil {
		t.Fatal(err)
	}

	tools, err := s.ListTools("LinkedIn")
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("len = %d, want 2", len(tools))
	}

	categories, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[0] != "linkedin" || categories[1] != "twitter" {
		t.Errorf("categories = %v, want [linkedin twitter]", categories)
	}
}

func TestDeleteTool(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll(testTools); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTool("thread-maker"); err != nil {
		t.Fatalf("DeleteTool failed: %v", err)
	}
	if _, err := s.GetTool("thread-maker"); err != sql.ErrNoRows {
		t.Errorf("expected deleted tool to be gone, err = %v", err)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	s := setupTestStore(t)

	seeded, err := s.SeedIfEmpty(testTools)
	if err != nil || !seeded {
		t.Fatalf("first seed: seeded=%v err=%v", seeded, err)
	}
	seeded, err = s.SeedIfEmpty(testTools[:1])
	if err != nil || seeded {
		t.Fatalf("second seed: seeded=%v err=%v", seeded, err)
	}
	if n, _ := s.Count(); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestToolCache(t *testing.T) {
	s := setupTestStore(t)
	if err := s.ReplaceAll(testTools); err != nil {
		t.Fatal(err)
	}
	c := NewToolCache(s, time.Hour)

	tools, err := c.ListTools("linkedin")
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools) != 2 {
		t.Errorf("len = %d, want 2", len(tools))
	}

	if err := s.DeleteTool("thread-maker"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetTool("thread-maker"); err != nil {
		t.Errorf("cached tool should still be served, err = %v", err)
	}

	c.Invalidate()
	if _, err := c.GetTool("thread-maker"); err != ErrNotFound {
		t.Errorf("after Invalidate err = %v, want ErrNotFound", err)
	}
}

func TestToolCacheEmptyStore(t *testing.T) {
	c := NewToolCache(setupTestStore(t), time.Hour)
	tools, err := c.ListTools("")
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools) != 0 {
		t.Errorf("len = %d, want 0", len(tools))
	}
}
