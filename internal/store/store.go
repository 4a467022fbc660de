package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/finmentor-dev/finmentor/internal/id"
	"github.com/finmentor-dev/finmentor/internal/model"
)

// StateFile is the JSON file holding the ledger state inside a ledger directory.
const StateFile = "state.json"

// state is the on-disk shape of the ledger.
type state struct {
	Transactions []model.Transaction `json:"transactions"`
	Budgets      []model.Budget      `json:"budgets"`
	SavingsGoals []model.SavingsGoal `json:"savingsGoals"`
}

// Store owns the in-memory ledger and persists every mutation back to
// state.json. Reads return copies, so callers can hold results across
// later mutations.
type Store struct {
	mu    sync.RWMutex
	path  string
	state state
}

// Open loads the ledger state from dir, seeding a fresh state when the
// file does not exist or cannot be decoded.
func Open(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, StateFile)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.state = seedState()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger state: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		// Corrupt state falls back to the seed rather than failing,
		// the same recovery the original storage layer used.
		s.state = seedState()
		return s, nil
	}
	s.state = st
	return s, nil
}

func seedState() state {
	return state{
		Transactions: SeedTransactions(),
		Budgets:      SeedBudgets(),
		SavingsGoals: SeedGoals(),
	}
}

// Append assigns an ID to tx, prepends it to the ledger, bumps the matching
// budget's spent total by the absolute amount, and persists. Returns the
// stored transaction.
func (s *Store) Append(tx model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = id.New()
	s.state.Transactions = append([]model.Transaction{tx}, s.state.Transactions...)

	for i := range s.state.Budgets {
		if strings.EqualFold(s.state.Budgets[i].Category, tx.Category) {
			s.state.Budgets[i].Spent = s.state.Budgets[i].Spent.Add(tx.Amount.Abs())
		}
	}

	if err := s.persist(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// AddBudget appends a budget and persists.
func (s *Store) AddBudget(b model.Budget) (model.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = id.New()
	s.state.Budgets = append(s.state.Budgets, b)
	if err := s.persist(); err != nil {
		return model.Budget{}, err
	}
	return b, nil
}

// AddGoal appends a savings goal and persists.
func (s *Store) AddGoal(g model.SavingsGoal) (model.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = id.New()
	s.state.SavingsGoals = append(s.state.SavingsGoals, g)
	if err := s.persist(); err != nil {
		return model.SavingsGoal{}, err
	}
	return g, nil
}

// Transactions returns a snapshot of all transactions, newest first.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out
}

// Budgets returns a snapshot of all budgets.
func (s *Store) Budgets() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Budget, len(s.state.Budgets))
	copy(out, s.state.Budgets)
	return out
}

// Goals returns a snapshot of all savings goals.
func (s *Store) Goals() []model.SavingsGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SavingsGoal, len(s.state.SavingsGoals))
	copy(out, s.state.SavingsGoals)
	return out
}

// Save forces the current state to disk. Open does not write; a fresh
// seeded store only hits disk on the first mutation or an explicit Save.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// persist writes state.json. Callers must hold mu.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger state: %w", err)
	}
	return nil
}
