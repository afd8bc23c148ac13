package ai

import (
	"fmt"
	"strings"

	"bimsite/internal/domain/models"
)

// Caps on how much free text the prompt carries. The manual knowledge base
// is trimmed harder than uploaded documents because it tends to be pasted
// wholesale.
const (
	maxKnowledgeBaseRunes = 5000
	maxDocumentRunes      = 8000
)

// ContextData is the live site content injected into the system prompt.
type ContextData struct {
	ProjectInfo  models.ProjectInfo
	Highlights   []models.Highlight
	Achievements []models.Achievement
	TeamMembers  []models.TeamMember
	Documents    []models.KnowledgeDocument
}

// BuildContext renders the real-time data block appended to the configured
// system prompt. The assistant answers from this block instead of its
// training data, so the layout stays stable for prompt tuning.
func BuildContext(data ContextData, knowledgeBase string) string {
	var highlights strings.Builder
	for i, h := range data.Highlights {
		if i > 0 {
			highlights.WriteString("\n   ")
		}
		fmt.Fprintf(&highlights, "%d. %s: %s", i+1, h.Title, h.Summary)
	}

	var achievements strings.Builder
	for i, a := range data.Achievements {
		if i > 0 {
			achievements.WriteString("\n   ")
		}
		fmt.Fprintf(&achievements, "- [%s] %s (%s)", a.Type, a.Title, a.Date)
	}

	var members strings.Builder
	for i, m := range data.TeamMembers {
		if i > 0 {
			members.WriteString("\n   ")
		}
		fmt.Fprintf(&members, "- %s (%s): %s", m.Name, m.Role, m.Contact)
	}

	kbSection := ""
	if knowledgeBase != "" {
		kbSection = "【手动输入/旧资料】:\n" + truncateRunes(knowledgeBase, maxKnowledgeBaseRunes) + "\n"
	}

	docSection := "暂无上传文档"
	if len(data.Documents) > 0 {
		parts := make([]string, len(data.Documents))
		for i, doc := range data.Documents {
			parts[i] = fmt.Sprintf("--- 文档: %s ---\n%s", doc.Name, truncateRunes(doc.Content, maxDocumentRunes))
		}
		docSection = "【上传文档资料】:\n" + strings.Join(parts, "\n\n")
	}

	return fmt.Sprintf(`
【项目当前实时数据】
1. 项目基本信息：
   - 名称：%s
   - 描述：%s
   - 地址：%s
   - 总建筑面积：%s
   - 总投资额：%s

2. 核心亮点应用 (%d项)：
   %s

3. 应用成效与奖项：
   %s

4. 团队核心成员：
   %s

[补充知识库/文档内容]:
%s
%s
`,
		data.ProjectInfo.Name,
		data.ProjectInfo.Description,
		data.ProjectInfo.Location,
		data.ProjectInfo.TotalArea,
		data.ProjectInfo.Investment,
		len(data.Highlights),
		highlights.String(),
		achievements.String(),
		members.String(),
		kbSection,
		docSection,
	)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
