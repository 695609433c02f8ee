package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/report-mapping-api/internal/database/dbtest"
	"github.com/report-mapping-api/internal/domain"
	"github.com/report-mapping-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T, now time.Time) *uploadService {
	t.Helper()
	return &uploadService{
		uploadRepo: repository.NewUploadRepository(dbtest.New(t)),
		now:        func() time.Time { return now },
	}
}

func TestMissingHeaders(t *testing.T) {
	svc := newTestUploadService(t, time.Now())

	tests := []struct {
		name     string
		fileType string
		header   []string
		want     []string
	}{
		{
			name:     "travel partial",
			fileType: "travel",
			header:   []string{"employee_id", "destination", "cost"},
			want:     []string{"departure_date", "return_date", "purpose"},
		},
		{
			name:     "case and spaces ignored",
			fileType: "donations",
			header:   []string{" Employee_ID", "CHARITY_NAME ", "donation_date", "Amount", "matched", "extra"},
			want:     []string{},
		},
		{
			name:     "byte order mark",
			fileType: "meetings",
			header:   []string{"\uFEFFemployee_id", "meeting_date", "duration", "attendees", "purpose", "location"},
			want:     []string{},
		},
		{
			name:     "empty header",
			fileType: "donations",
			header:   nil,
			want:     []string{"employee_id", "charity_name", "donation_date", "amount", "matched"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.MissingHeaders(tt.fileType, tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := svc.MissingHeaders("payroll", []string{"employee_id"})
	assert.ErrorIs(t, err, domain.ErrUnknownFileType)
}

func TestUpload_RecordsHistory(t *testing.T) {
	now := time.Date(2025, time.April, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestUploadService(t, now)
	ctx := context.Background()

	body := "employee_id,destination,departure_date,return_date,purpose,cost\n" +
		"emp-101,Berlin,2025-03-01,2025-03-04,Conference,1200\n" +
		"emp-201,\"Paris, FR\",2025-03-10,2025-03-12,Client visit,800\n"

	rec, err := svc.Upload(ctx, UploadInput{
		FileType:   "travel",
		FileName:   "travel_2025_04.csv",
		UploadedBy: "Finance Ops",
		Body:       strings.NewReader(body),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.RecordCount)
	assert.Equal(t, "April 2025", rec.Month)
	assert.Equal(t, UploadStatusCompleted, rec.Status)
	assert.True(t, strings.HasPrefix(rec.ID, "upload-"))

	history, err := svc.History(ctx, "travel", "April 2025")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].ID)
}

func TestUpload_RejectsMissingHeaders(t *testing.T) {
	svc := newTestUploadService(t, time.Now())

	_, err := svc.Upload(context.Background(), UploadInput{
		FileType: "travel",
		FileName: "bad.csv",
		Body:     strings.NewReader("employee_id,destination,cost\nemp-101,Berlin,10\n"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var missing *domain.MissingHeadersError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"departure_date", "return_date", "purpose"}, missing.Missing)

	history, err := svc.History(context.Background(), "travel", "")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestUpload_Errors(t *testing.T) {
	svc := newTestUploadService(t, time.Now())
	ctx := context.Background()

	_, err := svc.Upload(ctx, UploadInput{FileType: "donations", Body: strings.NewReader("")})
	assert.ErrorIs(t, err, domain.ErrEmptyFile)

	_, err = svc.Upload(ctx, UploadInput{FileType: "payroll", Body: strings.NewReader("a,b\n")})
	assert.ErrorIs(t, err, domain.ErrUnknownFileType)

	_, err = svc.History(ctx, "payroll", "")
	assert.ErrorIs(t, err, domain.ErrUnknownFileType)
}

func TestUnknownFileTypeListsSupportedTypes(t *testing.T) {
	svc := newTestUploadService(t, time.Now())

	_, err := svc.MissingHeaders("payroll", nil)
	require.ErrorIs(t, err, domain.ErrUnknownFileType)
	assert.Contains(t, err.Error(), `"payroll"`)
	assert.Contains(t, err.Error(), "supported: donations, meetings, travel")
}
