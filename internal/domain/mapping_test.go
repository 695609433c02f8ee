package domain_test

import (
	"errors"
	"testing"

	"github.com/report-mapping-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployee() *domain.Employee {
	return &domain.Employee{
		ID:          "emp-101",
		Name:        "John Smith",
		TeamID:      "team-sales",
		AreaID:      "area-north-america",
		CityID:      "nyc",
		CityName:    "New York",
		CountryID:   "usa",
		CountryName: "USA",
	}
}

func TestMatches_EachType(t *testing.T) {
	emp := sampleEmployee()

	cases := []struct {
		mapping domain.Mapping
		want    bool
	}{
		{domain.Mapping{Type: domain.MappingEmployeeID, Value: "emp-101"}, true},
		{domain.Mapping{Type: domain.MappingEmployeeID, Value: "emp-102"}, false},
		{domain.Mapping{Type: domain.MappingTeamID, Value: "team-sales"}, true},
		{domain.Mapping{Type: domain.MappingAreaID, Value: "area-north-america"}, true},
		{domain.Mapping{Type: domain.MappingAreaID, Value: "area-europe"}, false},
		{domain.Mapping{Type: domain.MappingCityID, Value: "nyc"}, true},
		{domain.Mapping{Type: domain.MappingCountryID, Value: "usa"}, true},
		{domain.Mapping{Type: domain.MappingCountryID, Value: "uk"}, false},
		{domain.Mapping{Type: "regionId", Value: "usa"}, false},
		{domain.Mapping{Type: "", Value: ""}, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.Matches(emp, tc.mapping), "%s=%s", tc.mapping.Type, tc.mapping.Value)
	}
}

func TestMatchesAny_IsLogicalOr(t *testing.T) {
	emp := sampleEmployee()

	mappings := []domain.Mapping{
		{Type: domain.MappingTeamID, Value: "team-marketing"},
		{Type: domain.MappingCityID, Value: "nyc"},
	}
	assert.True(t, domain.MatchesAny(emp, mappings))

	mappings[1].Value = "london"
	assert.False(t, domain.MatchesAny(emp, mappings))
}

func TestMatchesAny_EmptyMatchesNothing(t *testing.T) {
	assert.False(t, domain.MatchesAny(sampleEmployee(), nil))
	assert.False(t, domain.MatchesAny(sampleEmployee(), []domain.Mapping{}))
}

func TestParseMappingType(t *testing.T) {
	for _, mt := range domain.MappingTypes {
		parsed, err := domain.ParseMappingType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)

		parsed, err = domain.ParseMappingType(mt.Snake())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}

	_, err := domain.ParseMappingType("departmentId")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestMappingFromRecord(t *testing.T) {
	m, ok := domain.MappingFromRecord(&domain.MappingRecord{MappingType: "city_id", MappingID: "tokyo"})
	require.True(t, ok)
	assert.Equal(t, domain.Mapping{Type: domain.MappingCityID, Value: "tokyo"}, m)

	_, ok = domain.MappingFromRecord(&domain.MappingRecord{MappingType: "bogus", MappingID: "x"})
	assert.False(t, ok)
}

func TestEmployeeLocation(t *testing.T) {
	emp := sampleEmployee()
	assert.Equal(t, "New York, USA", emp.Location())

	emp.CityName, emp.CountryName = "Singapore", "Singapore"
	assert.Equal(t, "Singapore", emp.Location())
}

func TestErrorCategories(t *testing.T) {
	assert.True(t, errors.Is(domain.ErrReportNotFound, domain.ErrNotFound))
	assert.True(t, errors.Is(domain.ErrMappingTargetRequired, domain.ErrInvalidInput))
	assert.Equal(t, "employee not found", domain.ErrEmployeeNotFound.Error())

	err := &domain.MissingHeadersError{FileType: "travel", Missing: []string{"purpose"}}
	assert.True(t, errors.Is(err, domain.ErrMissingHeaders))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
