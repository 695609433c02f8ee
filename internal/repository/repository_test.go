package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/report-mapping-api/internal/database/dbtest"
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_ListPreservesSeedOrder(t *testing.T) {
	repo := repository.NewEmployeeRepository(dbtest.New(t))

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 13)
	assert.Equal(t, "emp-101", employees[0].ID)
	assert.Equal(t, "emp-401", employees[12].ID)
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo := repository.NewEmployeeRepository(dbtest.New(t))

	_, err := repo.GetByID(context.Background(), "emp-999")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_FindFirstByMapping(t *testing.T) {
	repo := repository.NewEmployeeRepository(dbtest.New(t))
	ctx := context.Background()

	emp, err := repo.FindFirstByMapping(ctx, domain.Mapping{Type: domain.MappingCityID, Value: "london"})
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "emp-201", emp.ID)

	emp, err = repo.FindFirstByMapping(ctx, domain.Mapping{Type: domain.MappingCityID, Value: "boston"})
	require.NoError(t, err)
	assert.Nil(t, emp)

	_, err = repo.FindFirstByMapping(ctx, domain.Mapping{Type: "regionId", Value: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportRepository_GetByNameLoadsSupervisorsInOrder(t *testing.T) {
	repo := repository.NewReportRepository(dbtest.New(t))

	report, err := repo.GetByName(context.Background(), "Global Executive Summary")
	require.NoError(t, err)
	assert.Equal(t, "report-4", report.ID)
	assert.Equal(t, []string{"emp-101", "emp-203", "emp-304"}, report.SupervisorIDs())

	_, err = repo.GetByName(context.Background(), "Unknown")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestMappingRepository_ListActiveExcludesInactive(t *testing.T) {
	repo := repository.NewMappingRepository(dbtest.New(t))

	records, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 17)
	for _, rec := range records {
		assert.Equal(t, domain.ActiveYes, rec.ActiveFlag, rec.ID)
	}
}

func TestMappingRepository_ListEffective(t *testing.T) {
	repo := repository.NewMappingRepository(dbtest.New(t))

	records, err := repo.ListEffective(context.Background(), "Q1 Sales Performance")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "map-1", records[0].ID)
	assert.Equal(t, "map-2", records[1].ID)
}

func TestMappingRepository_CreateAppendsAtEnd(t *testing.T) {
	repo := repository.NewMappingRepository(dbtest.New(t))
	ctx := context.Background()

	rec := &domain.MappingRecord{
		ID:            "map-new",
		ReportName:    "Tokyo Office Metrics",
		MappingType:   "team_id",
		MappingID:     "team-support",
		InclusionFlag: domain.InclusionYes,
		ActiveFlag:    domain.ActiveYes,
	}
	require.NoError(t, repo.Create(ctx, rec))
	assert.Equal(t, 21, rec.SortOrder)

	found, err := repo.FindByKey(ctx, "Tokyo Office Metrics", "team_id", "team-support")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "map-new", found.ID)
}

func TestEmployeeMappingRepository_UpdateUnknown(t *testing.T) {
	repo := repository.NewEmployeeMappingRepository(dbtest.New(t))

	err := repo.Update(context.Background(), &domain.EmployeeMapping{ID: "em-999", InclusionFlag: domain.InclusionNo})
	assert.ErrorIs(t, err, domain.ErrMappingNotFound)
}

func TestEmployeeMappingRepository_ReplaceExisting(t *testing.T) {
	repo := repository.NewEmployeeMappingRepository(dbtest.New(t))
	ctx := context.Background()

	existing, err := repo.GetByID(ctx, "em-2")
	require.NoError(t, err)

	changed := *existing
	changed.InclusionFlag = domain.InclusionNo
	changed.SortOrder = 0

	replaced, err := repo.ReplaceExisting(ctx, []domain.EmployeeMapping{
		changed,
		{ID: "em-unknown", EmployeeID: "emp-101", ReportName: "X", MappingType: "teamId", MappingValue: "v", InclusionFlag: "Yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, replaced)

	mappings, err := repo.ListByReport(ctx, "Q1 Sales Performance")
	require.NoError(t, err)
	require.Len(t, mappings, 6)
	assert.Equal(t, "em-2", mappings[1].ID)
	assert.Equal(t, domain.InclusionNo, mappings[1].InclusionFlag)

	_, err = repo.GetByID(ctx, "em-unknown")
	assert.ErrorIs(t, err, domain.ErrMappingNotFound)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := dbtest.New(t)
	tx := repository.NewTransactor(db)
	repo := repository.NewMappingRepository(db)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := repo.Create(ctx, &domain.MappingRecord{
			ID:            "map-tx",
			ReportName:    "Tokyo Office Metrics",
			MappingType:   "area_id",
			MappingID:     "area-apac",
			InclusionFlag: domain.InclusionYes,
			ActiveFlag:    domain.ActiveYes,
		}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	found, err := repo.FindByKey(ctx, "Tokyo Office Metrics", "area_id", "area-apac")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUploadRepository_ListFilters(t *testing.T) {
	repo := repository.NewUploadRepository(dbtest.New(t))
	ctx := context.Background()

	travel, err := repo.List(ctx, "travel", "")
	require.NoError(t, err)
	require.Len(t, travel, 2)
	assert.Equal(t, "upload-2", travel[0].ID)

	march, err := repo.List(ctx, "", "March 2025")
	require.NoError(t, err)
	assert.Len(t, march, 2)
}
