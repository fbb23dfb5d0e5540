package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/colorpal/colorpal-server/internal/color"
	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

func makeTestPalette(id, userID string, colorIDs ...string) *domain.Palette {
	now := time.Now()
	return &domain.Palette{
		Record:     domain.Record{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:       "Palette " + id,
		SchemeType: color.Analogous,
		Access:     domain.AccessPrivate,
		UserID:     userID,
		ColorIDs:   colorIDs,
	}
}

func TestCreateAndGetPalette_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateColor(t, s, "c1", "#111111")
	mustCreateColor(t, s, "c2", "#222222")
	mustCreateColor(t, s, "c3", "#333333")

	p := makeTestPalette("pal-1", "user-1", "c3", "c1", "c2")
	if err := s.CreatePalette(ctx, p); err != nil {
		t.Fatalf("CreatePalette: %v", err)
	}

	got, err := s.GetPalette(ctx, "pal-1")
	if err != nil {
		t.Fatalf("GetPalette: %v", err)
	}
	want := []string{"c3", "c1", "c2"}
	for i, id := range want {
		if got.ColorIDs[i] != id || got.Colors[i].ID != id {
			t.Fatalf("position %d: got %s", i, got.ColorIDs[i])
		}
	}
	if got.SchemeType != color.Analogous || got.Access != domain.AccessPrivate {
		t.Errorf("unexpected %+v", got)
	}

	ids, err := s.ListPaletteIDsForColor(ctx, "c1")
	if err != nil || len(ids) != 1 || ids[0] != "pal-1" {
		t.Errorf("ListPaletteIDsForColor: %v %v", ids, err)
	}
}

func TestCreatePalette_UnknownColorRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateColor(t, s, "c1", "#111111")

	if err := s.CreatePalette(ctx, makeTestPalette("pal-1", "user-1", "c1", "nope")); err == nil {
		t.Fatal("expected foreign key failure")
	}
	if _, err := s.GetPalette(ctx, "pal-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("palette should not exist, got %v", err)
	}
}

func TestListPalettesByUser_UpdatedDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateUser(t, s, "user-2")
	mustCreateColor(t, s, "c1", "#111111")

	older := makeTestPalette("old", "user-1", "c1")
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := makeTestPalette("new", "user-1", "c1")
	other := makeTestPalette("other", "user-2", "c1")
	for _, p := range []*domain.Palette{older, newer, other} {
		if err := s.CreatePalette(ctx, p); err != nil {
			t.Fatalf("CreatePalette: %v", err)
		}
	}

	got, err := s.ListPalettesByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListPalettesByUser: %v", err)
	}
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("unexpected palettes %v", got)
	}
	if len(got[0].Colors) != 1 {
		t.Errorf("colors not loaded")
	}
}

func TestUpdatePalette_ReplacesColors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateColor(t, s, "c1", "#111111")
	mustCreateColor(t, s, "c2", "#222222")

	p := makeTestPalette("pal-1", "user-1", "c1")
	if err := s.CreatePalette(ctx, p); err != nil {
		t.Fatal(err)
	}

	p.Name = "Renamed"
	p.Access = domain.AccessPublic
	p.ColorIDs = []string{"c2", "c1"}
	if err := s.UpdatePalette(ctx, p); err != nil {
		t.Fatalf("UpdatePalette: %v", err)
	}

	got, _ := s.GetPalette(ctx, "pal-1")
	if got.Name != "Renamed" || got.Access != domain.AccessPublic {
		t.Errorf("unexpected %+v", got)
	}
	if len(got.ColorIDs) != 2 || got.ColorIDs[0] != "c2" {
		t.Errorf("colors: %v", got.ColorIDs)
	}
}

func TestDeletePalette_KeepsColors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateColor(t, s, "c1", "#111111")
	if err := s.CreatePalette(ctx, makeTestPalette("pal-1", "user-1", "c1")); err != nil {
		t.Fatal(err)
	}

	if err := s.DeletePalette(ctx, "pal-1"); err != nil {
		t.Fatalf("DeletePalette: %v", err)
	}
	if _, err := s.GetColor(ctx, "c1"); err != nil {
		t.Errorf("color should survive: %v", err)
	}
	if err := s.DeletePalette(ctx, "pal-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPalettesByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustCreateUser(t, s, "user-1")
	mustCreateColor(t, s, "c1", "#111111")
	for _, id := range []string{"p1", "p2"} {
		if err := s.CreatePalette(ctx, makeTestPalette(id, "user-1", "c1")); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.GetPalettesByIDs(ctx, []string{"p2", "ghost"})
	if err != nil || len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("GetPalettesByIDs: %v %v", got, err)
	}
	all, err := s.ListPalettes(ctx)
	if err != nil || len(all) != 2 {
		t.Errorf("ListPalettes: %d %v", len(all), err)
	}
}
