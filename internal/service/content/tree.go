package content

import "bimsite/internal/domain/models"

// TreeNode is one member in the org chart with its direct reports.
type TreeNode struct {
	models.TeamMember
	Children []*TreeNode `json:"children"`
}

// TeamTree arranges the team members into the org chart. Members whose
// parent id is missing, self-referential, or part of a cycle are promoted
// to roots instead of being dropped.
func (s *Service) TeamTree() []*TreeNode {
	members := s.store.TeamMembers()

	nodes := make(map[string]*TreeNode, len(members))
	for _, m := range members {
		nodes[m.ID] = &TreeNode{TeamMember: m, Children: []*TreeNode{}}
	}

	var roots []*TreeNode
	for _, m := range members {
		node := nodes[m.ID]
		if isRoot(m, nodes) {
			roots = append(roots, node)
			continue
		}
		parent := nodes[m.ParentID]
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// isRoot reports whether a member should sit at the top level. Walking the
// ancestor chain with a visited set catches cycles that never reach a true
// root.
func isRoot(m models.TeamMember, nodes map[string]*TreeNode) bool {
	if m.ParentID == "" || m.ParentID == m.ID {
		return true
	}
	if _, ok := nodes[m.ParentID]; !ok {
		return true
	}

	visited := map[string]bool{m.ID: true}
	current := m.ParentID
	for current != "" {
		if visited[current] {
			// Cycle back through this member; break it here.
			return true
		}
		visited[current] = true
		parent, ok := nodes[current]
		if !ok {
			break
		}
		current = parent.ParentID
	}
	return false
}
