package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"bimsite/internal/domain/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSnapshotEmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	snap, err := s.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	// Never-stored entities come back nil so hydration can seed them.
	if snap.ProjectInfo != nil {
		t.Error("expected nil project info on fresh database")
	}
	if snap.Highlights != nil {
		t.Error("expected nil highlights on fresh database")
	}
}

func TestProjectInfoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	info := models.ProjectInfo{
		Name:       "示范项目",
		Location:   "上海市",
		TotalArea:  "12万㎡",
		Investment: "30亿元",
	}
	if err := s.SaveProjectInfo(ctx, info); err != nil {
		t.Fatalf("SaveProjectInfo: %v", err)
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.ProjectInfo == nil {
		t.Fatal("expected stored project info")
	}
	if !reflect.DeepEqual(*snap.ProjectInfo, info) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *snap.ProjectInfo, info)
	}
}

func TestHighlightUpsertAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.Highlight{
		ID:             "h1",
		Title:          "BIM正向设计",
		Summary:        "全过程正向设计",
		Images:         []string{"/uploads/images/a.jpg"},
		TechnicalSpecs: map[string]string{"平台": "Revit"},
	}
	if err := s.SaveHighlight(ctx, first); err != nil {
		t.Fatalf("SaveHighlight: %v", err)
	}
	if err := s.SaveHighlight(ctx, models.Highlight{ID: "h2", Title: "second"}); err != nil {
		t.Fatalf("SaveHighlight: %v", err)
	}

	// Replace h1; the list position must hold.
	first.Summary = "updated"
	if err := s.SaveHighlight(ctx, first); err != nil {
		t.Fatalf("SaveHighlight update: %v", err)
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Highlights) != 2 {
		t.Fatalf("expected 2 highlights, got %d", len(snap.Highlights))
	}
	if snap.Highlights[0].ID != "h1" || snap.Highlights[0].Summary != "updated" {
		t.Errorf("update not applied in place: %+v", snap.Highlights[0])
	}
	if !reflect.DeepEqual(snap.Highlights[0].TechnicalSpecs, first.TechnicalSpecs) {
		t.Errorf("technical specs lost: %+v", snap.Highlights[0].TechnicalSpecs)
	}

	if err := s.DeleteHighlight(ctx, "h1"); err != nil {
		t.Fatalf("DeleteHighlight: %v", err)
	}
	snap, err = s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Highlights) != 1 || snap.Highlights[0].ID != "h2" {
		t.Errorf("delete failed: %+v", snap.Highlights)
	}
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	s := openTestStore(t)

	if err := s.DeleteAchievement(context.Background(), "never-existed"); err != nil {
		t.Errorf("expected idempotent delete, got %v", err)
	}
}

func TestAIConfigRoundTripKeepsDocuments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	cfg := models.AIConfig{
		Provider:     "deepseek",
		ProviderName: "DeepSeek (深度求索)",
		APIKey:       "sk-test",
		BaseURL:      "https://api.deepseek.com",
		Model:        "deepseek-chat",
		Documents: []models.KnowledgeDocument{
			{ID: "d1", Name: "简介.txt", Type: "txt", Size: 12, Content: "项目简介内容"},
		},
	}
	if err := s.SaveAIConfig(ctx, cfg); err != nil {
		t.Fatalf("SaveAIConfig: %v", err)
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.AIConfig == nil {
		t.Fatal("expected stored ai config")
	}
	if !reflect.DeepEqual(*snap.AIConfig, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *snap.AIConfig, cfg)
	}
}

func TestFlexIDSlidesSurviveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	slide := models.SiteSlide{ID: models.FlexID("1"), Title: "基坑开挖", Desc: "描述"}
	if err := s.SaveSiteSlide(ctx, slide); err != nil {
		t.Fatalf("SaveSiteSlide: %v", err)
	}

	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.SiteSlides) != 1 || snap.SiteSlides[0].ID != models.FlexID("1") {
		t.Errorf("flex id lost: %+v", snap.SiteSlides)
	}
}
