package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func rangeRequest(t *testing.T, query string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/api/v1/reports/entities/x/profit-loss"+query, nil)
}

func TestParseDateRange(t *testing.T) {
	start, end, err := parseDateRange(rangeRequest(t, "?startDate=2026-07-01&endDate=2026-07-31"))
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), start)
	// inclusive window: the end lands on the last second of its day
	require.Equal(t, time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestParseDateRangeSingleDay(t *testing.T) {
	start, end, err := parseDateRange(rangeRequest(t, "?startDate=2026-07-15&endDate=2026-07-15"))
	require.NoError(t, err)
	require.True(t, end.After(start))
}

func TestParseDateRangeMissing(t *testing.T) {
	_, _, err := parseDateRange(rangeRequest(t, ""))
	require.Error(t, err)

	_, _, err = parseDateRange(rangeRequest(t, "?startDate=2026-07-01"))
	require.Error(t, err)

	_, _, err = parseDateRange(rangeRequest(t, "?endDate=2026-07-31"))
	require.Error(t, err)
}

func TestParseDateRangeInvalid(t *testing.T) {
	_, _, err := parseDateRange(rangeRequest(t, "?startDate=07-01-2026&endDate=2026-07-31"))
	require.Error(t, err)

	_, _, err = parseDateRange(rangeRequest(t, "?startDate=2026-07-31&endDate=2026-07-01"))
	require.Error(t, err, "end before start is rejected")
}

func TestOptionalUUIDQuery(t *testing.T) {
	id := uuid.New()

	got, err := optionalUUIDQuery(rangeRequest(t, "?propertyId="+id.String()), "propertyId")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, id, *got)

	got, err = optionalUUIDQuery(rangeRequest(t, ""), "propertyId")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = optionalUUIDQuery(rangeRequest(t, "?propertyId=nope"), "propertyId")
	require.Error(t, err)
}
