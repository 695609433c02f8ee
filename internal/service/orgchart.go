package service

import (
	"github.com/report-mapping-api/internal/domain"
)

// OrgNode - узел дерева оргструктуры
type OrgNode struct {
	Employee domain.Employee
	Children []*OrgNode
	// Expanded - состояние раскрытия узла в интерфейсе, изначально раскрыт
	Expanded bool
}

// BuildOrgChart строит лес подчинения от указанных руководителей.
//
// В дерево попадают все прямые и косвенные подчинённые, каждый сотрудник
// ровно один раз. Руководитель из списка, который сам подчинён другому
// руководителю из списка, отображается внутри его поддерева, а не отдельным
// корнем. Неизвестные идентификаторы пропускаются. Обход использует множество
// посещённых узлов, поэтому завершается и на данных с циклами.
func BuildOrgChart(employees []domain.Employee, supervisorIDs []string) []*OrgNode {
	byID := make(map[string]*domain.Employee, len(employees))
	children := make(map[string][]*domain.Employee)
	for i := range employees {
		emp := &employees[i]
		byID[emp.ID] = emp
		if emp.SupervisorID != nil {
			children[*emp.SupervisorID] = append(children[*emp.SupervisorID], emp)
		}
	}

	roots := make([]*domain.Employee, 0, len(supervisorIDs))
	seenRoot := make(map[string]bool, len(supervisorIDs))
	for _, id := range supervisorIDs {
		emp, ok := byID[id]
		if !ok || seenRoot[id] {
			continue
		}
		seenRoot[id] = true
		roots = append(roots, emp)
	}

	// Руководители, достижимые из другого руководителя списка
	nested := make(map[string]bool)
	for _, root := range roots {
		visited := map[string]bool{root.ID: true}
		queue := []string{root.ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, child := range children[id] {
				if visited[child.ID] {
					continue
				}
				visited[child.ID] = true
				if seenRoot[child.ID] {
					nested[child.ID] = true
				}
				queue = append(queue, child.ID)
			}
		}
	}

	visited := make(map[string]bool)
	var forest []*OrgNode
	for _, root := range roots {
		if nested[root.ID] {
			continue
		}
		forest = append(forest, buildNode(root, children, visited))
	}
	// Руководители, входящие в цикл друг с другом, не имеют внешнего корня
	for _, root := range roots {
		if !visited[root.ID] {
			forest = append(forest, buildNode(root, children, visited))
		}
	}

	return forest
}

func buildNode(emp *domain.Employee, children map[string][]*domain.Employee, visited map[string]bool) *OrgNode {
	visited[emp.ID] = true
	node := &OrgNode{Employee: *emp, Expanded: true}
	for _, child := range children[emp.ID] {
		if visited[child.ID] {
			continue
		}
		node.Children = append(node.Children, buildNode(child, children, visited))
	}
	return node
}
