package service

import (
	"testing"

	"github.com/report-mapping-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emp(id string, supervisor string) domain.Employee {
	e := domain.Employee{ID: id, Name: id}
	if supervisor != "" {
		e.SupervisorID = &supervisor
	}
	return e
}

func ids(nodes []domain.Employee) []string {
	result := make([]string, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.ID)
	}
	return result
}

// flatten возвращает сотрудников дерева в порядке обхода в глубину
func flatten(forest []*OrgNode) []domain.Employee {
	var result []domain.Employee
	for _, n := range forest {
		result = append(result, n.Employee)
		result = append(result, flatten(n.Children)...)
	}
	return result
}

func TestBuildOrgChart_IncludesTransitiveReports(t *testing.T) {
	employees := []domain.Employee{
		emp("ceo", ""),
		emp("a", "ceo"),
		emp("b", "ceo"),
		emp("a1", "a"),
		emp("a11", "a1"),
	}

	forest := BuildOrgChart(employees, []string{"ceo"})
	require.Len(t, forest, 1)
	assert.Equal(t, []string{"ceo", "a", "a1", "a11", "b"}, ids(flatten(forest)))
}

func TestBuildOrgChart_NestedSupervisorIsNotSeparateRoot(t *testing.T) {
	employees := []domain.Employee{
		emp("a", ""),
		emp("b", "a"),
		emp("c", "b"),
	}

	// Порядок в списке не важен
	forest := BuildOrgChart(employees, []string{"b", "a"})
	require.Len(t, forest, 1)
	assert.Equal(t, "a", forest[0].Employee.ID)
	assert.Equal(t, []string{"a", "b", "c"}, ids(flatten(forest)))
}

func TestBuildOrgChart_IndependentRoots(t *testing.T) {
	employees := []domain.Employee{
		emp("a", ""),
		emp("b", ""),
		emp("a1", "a"),
		emp("b1", "b"),
	}

	forest := BuildOrgChart(employees, []string{"b", "a", "b", "missing"})
	require.Len(t, forest, 2)
	assert.Equal(t, "b", forest[0].Employee.ID)
	assert.Equal(t, "a", forest[1].Employee.ID)
}

func TestBuildOrgChart_TerminatesOnCycle(t *testing.T) {
	employees := []domain.Employee{
		emp("a", "c"),
		emp("b", "a"),
		emp("c", "b"),
	}

	forest := BuildOrgChart(employees, []string{"a"})
	require.Len(t, forest, 1)
	assert.Equal(t, []string{"a", "b", "c"}, ids(flatten(forest)))

	// Оба руководителя в одном цикле
	forest = BuildOrgChart(employees, []string{"a", "b"})
	require.Len(t, forest, 1)
	assert.Len(t, flatten(forest), 3)
}

func TestBuildOrgChart_UnknownSupervisors(t *testing.T) {
	forest := BuildOrgChart([]domain.Employee{emp("a", "")}, []string{"x", "y"})
	assert.Empty(t, forest)
}

func TestBuildOrgChart_SelfSupervisor(t *testing.T) {
	forest := BuildOrgChart([]domain.Employee{emp("a", "a")}, []string{"a"})
	require.Len(t, forest, 1)
	assert.Empty(t, forest[0].Children)
}
