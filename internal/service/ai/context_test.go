package ai

import (
	"strings"
	"testing"

	"bimsite/internal/domain/models"
)

func testContextData() ContextData {
	return ContextData{
		ProjectInfo: models.ProjectInfo{
			Name:        "示范项目",
			Description: "智慧建造示范工程",
			Location:    "上海市浦东新区",
			TotalArea:   "12万㎡",
			Investment:  "30亿元",
		},
		Highlights: []models.Highlight{
			{Title: "BIM正向设计", Summary: "全专业正向协同"},
			{Title: "智慧工地", Summary: "物联网监测"},
		},
		Achievements: []models.Achievement{
			{Type: models.AchievementAward, Title: "创新杯一等奖", Date: "2023-10"},
		},
		TeamMembers: []models.TeamMember{
			{Name: "张三", Role: "项目经理", Contact: "zhangsan@example.com"},
		},
	}
}

func TestBuildContextIncludesProjectData(t *testing.T) {
	got := BuildContext(testContextData(), "")

	for _, want := range []string{
		"【项目当前实时数据】",
		"- 名称：示范项目",
		"- 地址：上海市浦东新区",
		"- 总建筑面积：12万㎡",
		"- 总投资额：30亿元",
		"2. 核心亮点应用 (2项)：",
		"1. BIM正向设计: 全专业正向协同",
		"2. 智慧工地: 物联网监测",
		"- [award] 创新杯一等奖 (2023-10)",
		"- 张三 (项目经理): zhangsan@example.com",
		"暂无上传文档",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q\n%s", want, got)
		}
	}
}

func TestBuildContextManualKnowledgeBase(t *testing.T) {
	got := BuildContext(testContextData(), "补充说明")

	if !strings.Contains(got, "【手动输入/旧资料】:\n补充说明") {
		t.Errorf("knowledge base section missing:\n%s", got)
	}
}

func TestBuildContextTruncatesKnowledgeBase(t *testing.T) {
	kb := strings.Repeat("知", maxKnowledgeBaseRunes+100)
	got := BuildContext(testContextData(), kb)

	if strings.Contains(got, kb) {
		t.Error("knowledge base not truncated")
	}
	if !strings.Contains(got, strings.Repeat("知", maxKnowledgeBaseRunes)) {
		t.Error("truncated knowledge base missing")
	}
}

func TestBuildContextTruncatesDocuments(t *testing.T) {
	data := testContextData()
	data.Documents = []models.KnowledgeDocument{
		{Name: "规范.txt", Content: strings.Repeat("文", maxDocumentRunes+1)},
	}
	got := BuildContext(data, "")

	if !strings.Contains(got, "--- 文档: 规范.txt ---") {
		t.Errorf("document header missing:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("文", maxDocumentRunes+1)) {
		t.Error("document content not truncated")
	}
	if strings.Contains(got, "暂无上传文档") {
		t.Error("placeholder shown despite uploaded documents")
	}
}
