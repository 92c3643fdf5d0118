package careers

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/router"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func storeWithProfile(t *testing.T, cat *catalog.Catalog) *profile.Store {
	t.Helper()
	ratings := profile.Draft(cat.Competencies())
	for name := range ratings {
		ratings[name] = 4
	}
	prof := profile.NewStore()
	idx, err := prof.Add(profile.Profile{Name: "Current me", Competencies: ratings})
	if err != nil {
		t.Fatalf("add profile: %v", err)
	}
	if err := prof.Select(idx); err != nil {
		t.Fatalf("select profile: %v", err)
	}
	return prof
}

func TestExplorerScreen_NoProfile(t *testing.T) {
	cat := loadCatalog(t)
	e := New(cat, profile.NewStore())

	view := e.View(100, 30)
	if !strings.Contains(view, "No profile selected") {
		t.Errorf("expected empty-state message:\n%s", view)
	}
	if _, cmd := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter without a profile must be a no-op")
	}
}

func TestExplorerScreen_RanksAllCareers(t *testing.T) {
	cat := loadCatalog(t)
	e := New(cat, storeWithProfile(t, cat))

	if len(e.matches) != len(cat.Careers()) {
		t.Fatalf("matches = %d, want %d", len(e.matches), len(cat.Careers()))
	}
	for i := 1; i < len(e.matches); i++ {
		if e.matches[i-1].Score < e.matches[i].Score {
			t.Fatalf("matches out of order at %d: %.1f < %.1f",
				i, e.matches[i-1].Score, e.matches[i].Score)
		}
	}

	view := e.View(120, 40)
	if !strings.Contains(view, "CAREER COMPATIBILITY") {
		t.Errorf("view missing compatibility section:\n%s", view)
	}
	if !strings.Contains(view, "IMPROVEMENT PLAN") {
		t.Errorf("view missing improvement section:\n%s", view)
	}
}

func TestExplorerScreen_EnterOpensRiskDetail(t *testing.T) {
	cat := loadCatalog(t)
	e := New(cat, storeWithProfile(t, cat))

	_, cmd := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.PushScreenMsg", cmd())
	}

	view := push.Screen.View(100, 40)
	if !strings.Contains(view, "TASK BREAKDOWN") {
		t.Errorf("detail view missing task breakdown:\n%s", view)
	}
	if !strings.Contains(view, "ADAPTATION STRATEGIES") {
		t.Errorf("detail view missing strategies:\n%s", view)
	}
}
