// Package dashboard serves the ledger as a JSON API for dashboard
// frontends. Data is computed once into a cache and refreshed explicitly.
package dashboard

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finmentor-dev/finmentor/internal/model"
	"github.com/finmentor-dev/finmentor/internal/report"
)

// errRefreshInProgress guards against overlapping cache rebuilds.
var errRefreshInProgress = errors.New("refresh already in progress")

// Ledger is the read surface the dashboard needs from the store.
type Ledger interface {
	Transactions() []model.Transaction
	Budgets() []model.Budget
	Goals() []model.SavingsGoal
}

// SummaryData is the headline numbers payload.
type SummaryData struct {
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	TotalIncome decimal.Decimal `json:"totalIncome"`
	NetSavings  decimal.Decimal `json:"netSavings"`
}

// CachedData holds computed dashboard data for quick responses.
type CachedData struct {
	Transactions []model.Transaction
	Budgets      []model.Budget
	Goals        []model.SavingsGoal
	Report       report.Monthly
	Summary      SummaryData
	LastRefresh  time.Time
}

// Service handles dashboard requests.
type Service struct {
	ledger          Ledger
	cacheMu         sync.RWMutex
	cache           *CachedData
	cacheRefreshing bool
}

// NewService creates a dashboard service and warms the cache.
func NewService(ledger Ledger) *Service {
	s := &Service{ledger: ledger}
	_ = s.RebuildCache()
	return s
}

// RebuildCache recomputes all dashboard data in a single pass.
func (s *Service) RebuildCache() error {
	s.cacheMu.Lock()
	if s.cacheRefreshing {
		s.cacheMu.Unlock()
		return errRefreshInProgress
	}
	s.cacheRefreshing = true
	s.cacheMu.Unlock()

	defer func() {
		s.cacheMu.Lock()
		s.cacheRefreshing = false
		s.cacheMu.Unlock()
	}()

	txns := s.ledger.Transactions()
	monthly := report.Build(txns, time.Now())

	newCache := &CachedData{
		Transactions: txns,
		Budgets:      s.ledger.Budgets(),
		Goals:        s.ledger.Goals(),
		Report:       monthly,
		Summary: SummaryData{
			TotalSpent:  monthly.TotalSpent,
			TotalIncome: monthly.TotalIncome,
			NetSavings:  monthly.NetSavings,
		},
		LastRefresh: time.Now(),
	}

	s.cacheMu.Lock()
	s.cache = newCache
	s.cacheMu.Unlock()

	return nil
}

// Router returns the gin engine serving the API.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/summary", s.HandleSummary)
	api.GET("/transactions", s.HandleTransactions)
	api.GET("/budgets", s.HandleBudgets)
	api.GET("/goals", s.HandleGoals)
	api.GET("/report", s.HandleReport)
	api.GET("/cache/status", s.HandleCacheStatus)
	api.POST("/cache/refresh", s.HandleCacheRefresh)

	return r
}

func (s *Service) getCache() (*CachedData, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	if s.cache == nil {
		return nil, false
	}
	return s.cache, true
}

func needsRefresh(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"message": "cache empty; refresh required", "needsRefresh": true})
}

// HandleSummary returns the headline spent/income/savings numbers.
func (s *Service) HandleSummary(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		needsRefresh(c)
		return
	}
	c.JSON(http.StatusOK, cache.Summary)
}

// HandleTransactions returns the ledger, newest first.
func (s *Service) HandleTransactions(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		needsRefresh(c)
		return
	}
	c.JSON(http.StatusOK, cache.Transactions)
}

// HandleBudgets returns budget progress.
func (s *Service) HandleBudgets(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		needsRefresh(c)
		return
	}
	c.JSON(http.StatusOK, cache.Budgets)
}

// HandleGoals returns savings goal progress.
func (s *Service) HandleGoals(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		needsRefresh(c)
		return
	}
	c.JSON(http.StatusOK, cache.Goals)
}

// HandleReport returns the current monthly report.
func (s *Service) HandleReport(c *gin.Context) {
	cache, ok := s.getCache()
	if !ok {
		needsRefresh(c)
		return
	}
	c.JSON(http.StatusOK, cache.Report)
}

// HandleCacheStatus returns cache metadata.
func (s *Service) HandleCacheStatus(c *gin.Context) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	if s.cache == nil {
		c.JSON(http.StatusOK, gin.H{
			"hasCache":     false,
			"inProgress":   s.cacheRefreshing,
			"needsRefresh": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hasCache":    true,
		"inProgress":  s.cacheRefreshing,
		"lastRefresh": s.cache.LastRefresh,
	})
}

// HandleCacheRefresh triggers a rebuild of cached data.
func (s *Service) HandleCacheRefresh(c *gin.Context) {
	if err := s.RebuildCache(); err != nil {
		if errors.Is(err, errRefreshInProgress) {
			c.JSON(http.StatusAccepted, gin.H{"message": "refresh already in progress", "inProgress": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache rebuilt", "lastRefresh": time.Now()})
}
