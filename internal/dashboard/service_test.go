package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmentor-dev/finmentor/internal/model"
)

type fakeLedger struct {
	txns    []model.Transaction
	budgets []model.Budget
	goals   []model.SavingsGoal
}

func (f *fakeLedger) Transactions() []model.Transaction { return f.txns }
func (f *fakeLedger) Budgets() []model.Budget           { return f.budgets }
func (f *fakeLedger) Goals() []model.SavingsGoal        { return f.goals }

func newTestService(t *testing.T) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewService(&fakeLedger{
		txns: []model.Transaction{
			{ID: "1", Merchant: "Swiggy", Date: "Today", Amount: decimal.NewFromInt(-500), Category: "Dining"},
			{ID: "2", Merchant: "Salary", Date: "Today", Amount: decimal.NewFromInt(85000), Category: "Income"},
		},
		budgets: []model.Budget{
			{ID: "1", Category: "Dining", Spent: decimal.NewFromInt(500), Limit: decimal.NewFromInt(5000)},
		},
		goals: []model.SavingsGoal{
			{ID: "1", Name: "Goa Trip", Current: decimal.NewFromInt(45000), Target: decimal.NewFromInt(80000)},
		},
	})
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSummary(t *testing.T) {
	router := newTestService(t).Router()

	w := get(t, router, "/api/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary SummaryData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(500)), "spent %s", summary.TotalSpent)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(85000)))
	assert.True(t, summary.NetSavings.Equal(decimal.NewFromInt(84500)))
}

func TestHandleTransactions(t *testing.T) {
	router := newTestService(t).Router()

	w := get(t, router, "/api/transactions")
	require.Equal(t, http.StatusOK, w.Code)

	var txns []model.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Len(t, txns, 2)
	assert.Equal(t, "Swiggy", txns[0].Merchant)
}

func TestHandleBudgetsAndGoals(t *testing.T) {
	router := newTestService(t).Router()

	w := get(t, router, "/api/budgets")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dining")

	w = get(t, router, "/api/goals")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Goa Trip")
}

func TestHandleReport(t *testing.T) {
	router := newTestService(t).Router()

	w := get(t, router, "/api/report")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "totalSpent")
}

func TestHandleCacheStatus(t *testing.T) {
	router := newTestService(t).Router()

	w := get(t, router, "/api/cache/status")
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, true, status["hasCache"])
}

func TestHandleCacheRefresh(t *testing.T) {
	svc := newTestService(t)
	router := svc.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/cache/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cache rebuilt")
}

func TestEmptyCacheNeedsRefresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &Service{ledger: &fakeLedger{}}
	router := svc.Router()

	w := get(t, router, "/api/summary")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "needsRefresh")
}
