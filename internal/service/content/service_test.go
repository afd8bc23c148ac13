package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"bimsite/internal/domain"
	"bimsite/internal/domain/models"
	"bimsite/internal/repository/sqlite"
	"bimsite/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(repo, logger)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return NewService(st, logger)
}

func TestSaveHighlightAssignsID(t *testing.T) {
	s := newTestService(t)

	saved, err := s.SaveHighlight(context.Background(), models.Highlight{Title: "新亮点"})
	if err != nil {
		t.Fatalf("SaveHighlight: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated id")
	}

	got, err := s.Highlight(saved.ID)
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if got.Title != "新亮点" {
		t.Errorf("unexpected title %q", got.Title)
	}
}

func TestSaveHighlightRequiresTitle(t *testing.T) {
	s := newTestService(t)

	_, err := s.SaveHighlight(context.Background(), models.Highlight{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestHighlightNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Highlight("no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestSaveAchievementRejectsUnknownType(t *testing.T) {
	s := newTestService(t)

	_, err := s.SaveAchievement(context.Background(), models.Achievement{
		Title: "某成果",
		Type:  "medal",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSaveParticipatingUnitChecksCategory(t *testing.T) {
	s := newTestService(t)

	_, err := s.SaveParticipatingUnit(context.Background(), models.ParticipatingUnit{
		Name:     "某公司",
		Category: "未知单位",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	if _, err := s.SaveParticipatingUnit(context.Background(), models.ParticipatingUnit{
		Name:     "某设计院",
		Category: models.UnitDesigner,
	}); err != nil {
		t.Errorf("valid category rejected: %v", err)
	}
}

func clearTeam(t *testing.T, s *Service) {
	t.Helper()
	for _, m := range s.TeamMembers() {
		if err := s.DeleteTeamMember(context.Background(), m.ID); err != nil {
			t.Fatalf("DeleteTeamMember: %v", err)
		}
	}
}

func saveMember(t *testing.T, s *Service, m models.TeamMember) {
	t.Helper()
	if _, err := s.SaveTeamMember(context.Background(), m); err != nil {
		t.Fatalf("SaveTeamMember(%s): %v", m.ID, err)
	}
}

func TestTeamTreeBuildsHierarchy(t *testing.T) {
	s := newTestService(t)
	clearTeam(t, s)

	saveMember(t, s, models.TeamMember{ID: "boss", Name: "总负责人"})
	saveMember(t, s, models.TeamMember{ID: "lead", Name: "组长", ParentID: "boss"})
	saveMember(t, s, models.TeamMember{ID: "eng", Name: "工程师", ParentID: "lead"})

	tree := s.TeamTree()
	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	if tree[0].ID != "boss" || len(tree[0].Children) != 1 {
		t.Fatalf("unexpected root: %+v", tree[0])
	}
	if tree[0].Children[0].ID != "lead" || len(tree[0].Children[0].Children) != 1 {
		t.Errorf("unexpected second level: %+v", tree[0].Children[0])
	}
}

func TestTeamTreePromotesDanglingParent(t *testing.T) {
	s := newTestService(t)
	clearTeam(t, s)

	saveMember(t, s, models.TeamMember{ID: "a", Name: "甲", ParentID: "deleted-manager"})

	tree := s.TeamTree()
	if len(tree) != 1 || tree[0].ID != "a" {
		t.Errorf("dangling member not promoted to root: %+v", tree)
	}
}

func TestTeamTreeBreaksCycles(t *testing.T) {
	s := newTestService(t)
	clearTeam(t, s)

	// Write the cycle directly through the store; SaveTeamMember would not
	// normally produce one but stored data may contain it.
	saveMember(t, s, models.TeamMember{ID: "a", Name: "甲", ParentID: "b"})
	saveMember(t, s, models.TeamMember{ID: "b", Name: "乙", ParentID: "a"})

	tree := s.TeamTree()
	total := 0
	var walk func(nodes []*TreeNode)
	walk = func(nodes []*TreeNode) {
		for _, n := range nodes {
			total++
			walk(n.Children)
		}
	}
	walk(tree)

	if total != 2 {
		t.Errorf("cycle dropped members, saw %d of 2", total)
	}
	if len(tree) == 0 {
		t.Error("expected at least one root")
	}
}

func TestAIConfigViewRedactsKey(t *testing.T) {
	s := newTestService(t)

	cfg := models.AIConfig{Provider: "deepseek", APIKey: "sk-secret"}
	if err := s.UpdateAIConfig(context.Background(), cfg); err != nil {
		t.Fatalf("UpdateAIConfig: %v", err)
	}

	view, keySet := s.AIConfigView()
	if view.APIKey != "" {
		t.Errorf("api key leaked: %q", view.APIKey)
	}
	if !keySet {
		t.Error("expected keySet true")
	}
}

func TestUpdateAIConfigKeepsStoredKeyOnEmptyInput(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if err := s.UpdateAIConfig(ctx, models.AIConfig{Provider: "deepseek", APIKey: "sk-secret"}); err != nil {
		t.Fatalf("UpdateAIConfig: %v", err)
	}

	// Editing the model without re-entering the key must not wipe it.
	if err := s.UpdateAIConfig(ctx, models.AIConfig{Provider: "deepseek", Model: "deepseek-chat"}); err != nil {
		t.Fatalf("UpdateAIConfig: %v", err)
	}

	_, keySet := s.AIConfigView()
	if !keySet {
		t.Error("stored key wiped by empty update")
	}
}

func TestKnowledgeDocumentLifecycle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	docs, err := s.AddKnowledgeDocuments(ctx, []models.KnowledgeDocument{
		{Name: "简介.txt", Type: "txt", Size: 10, Content: "项目简介"},
	})
	if err != nil {
		t.Fatalf("AddKnowledgeDocuments: %v", err)
	}
	if len(docs) != 1 || docs[0].ID == "" || docs[0].UploadDate == 0 {
		t.Fatalf("document not normalized: %+v", docs)
	}

	if err := s.DeleteKnowledgeDocument(ctx, docs[0].ID); err != nil {
		t.Fatalf("DeleteKnowledgeDocument: %v", err)
	}

	err = s.DeleteKnowledgeDocument(ctx, docs[0].ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestUpdateAIConfigPreservesDocuments(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.AddKnowledgeDocuments(ctx, []models.KnowledgeDocument{
		{Name: "a.txt", Content: "a"},
	}); err != nil {
		t.Fatalf("AddKnowledgeDocuments: %v", err)
	}

	if err := s.UpdateAIConfig(ctx, models.AIConfig{Provider: "moonshot"}); err != nil {
		t.Fatalf("UpdateAIConfig: %v", err)
	}

	view, _ := s.AIConfigView()
	if len(view.Documents) != 1 {
		t.Errorf("documents lost on config update: %+v", view.Documents)
	}
}
