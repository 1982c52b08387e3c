package finance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/clubhouse/internal/finance"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

func newService(t *testing.T) finance.Service {
	t.Helper()
	store := recordstore.New(filepath.Join(t.TempDir(), "finances.csv"), finance.Schema)
	return finance.NewContainer(store).Service
}

func TestCreateEntry(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, finance.CreateEntryDTO{Date: "2026-03-01", Type: finance.EntryIncome, Category: "Dues", Amount: "100"})
	require.NoError(t, err)
	assert.Equal(t, "100.00", e.Amount)

	invalid := map[string]finance.CreateEntryDTO{
		"date":       {Date: "March", Type: finance.EntryIncome, Category: "Dues", Amount: "1"},
		"type":       {Date: "2026-03-01", Type: "Gift", Category: "Dues", Amount: "1"},
		"category":   {Date: "2026-03-01", Type: finance.EntryIncome, Amount: "1"},
		"nonnumeric": {Date: "2026-03-01", Type: finance.EntryIncome, Category: "Dues", Amount: "ten"},
		"zero":       {Date: "2026-03-01", Type: finance.EntryIncome, Category: "Dues", Amount: "0"},
		"negative":   {Date: "2026-03-01", Type: finance.EntryExpense, Category: "Dues", Amount: "-4"},
	}
	for name, dto := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, dto)
			assert.ErrorIs(t, err, recordstore.ErrValidation)
		})
	}
}

func TestSummaryFromStore(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, dto := range []finance.CreateEntryDTO{
		{Date: "2026-03-01", Type: finance.EntryIncome, Category: "Dues", Amount: "100"},
		{Date: "2026-03-02", Type: finance.EntryExpense, Category: "Books", Amount: "40"},
		{Date: "2026-03-03", Type: finance.EntryIncome, Category: "Dues", Amount: "5"},
	} {
		_, err := svc.Create(ctx, dto)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "105", summary.TotalIncome.String())
	assert.Equal(t, "40", summary.TotalExpenses.String())
	assert.Equal(t, "65", summary.Balance.String())

	router := finance.Routes(finance.NewHandler(svc))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/breakdown", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Summary          map[string]string `json:"summary"`
		IncomeByCategory map[string]string `json:"income_by_category"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "65", body.Summary["balance"])
	assert.Equal(t, "105", body.IncomeByCategory["Dues"])
}

func TestFinanceRoutes(t *testing.T) {
	svc := newService(t)
	router := finance.Routes(finance.NewHandler(svc))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2026-03-01","type":"Expense","category":"Snacks","amount":"abc"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2026-03-01","type":"Expense","category":"Snacks","amount":"12.5"}`)))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created finance.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var page finance.FinancesPageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, "-12.5", page.Summary.Balance.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/"+strings.ToUpper(created.ID), nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/download", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ID,Date,Type,Category,Amount,Description\n", rr.Body.String())
}

func TestFinanceRoutes_StorageFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finances.csv")
	store := recordstore.New(path, finance.Schema)
	require.NoError(t, store.EnsureInitialized())
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	router := finance.Routes(finance.NewContainer(store).Handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var page finance.FinancesPageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Empty(t, page.Records)
	assert.NotNil(t, page.Records)
	assert.True(t, page.Summary.Balance.IsZero())

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/summary", nil),
		httptest.NewRequest(http.MethodDelete, "/00000000-0000-0000-0000-000000000000", nil),
		httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2026-03-01","type":"Income","category":"Dues","amount":"5"}`)),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, req.URL.Path)
		assert.JSONEq(t, `{"error":"storage unavailable"}`, rr.Body.String(), req.URL.Path)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/download", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Disposition"))
}
