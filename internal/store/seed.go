package store

import (
	"github.com/shopspring/decimal"

	"github.com/finmentor-dev/finmentor/internal/model"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// SeedTransactions returns the sample ledger a new store starts with.
func SeedTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Merchant: "Cafe Coffee Day", Date: "Today, 9:41 AM", Amount: dec(-450), Category: "Dining", Icon: model.IconCoffee},
		{ID: "2", Merchant: "Ola Cab", Date: "Yesterday", Amount: dec(-280), Category: "Transport", Icon: model.IconCar},
		{ID: "3", Merchant: "Amazon India", Date: "Oct 24", Amount: dec(-3499), Category: "Shopping", Icon: model.IconShoppingBag},
		{ID: "4", Merchant: "Spotify Premium", Date: "Oct 22", Amount: dec(-119), Category: "Entertainment", Icon: model.IconMusic},
		{ID: "5", Merchant: "Big Bazaar", Date: "Oct 20", Amount: dec(-2850), Category: "Groceries", Icon: model.IconShoppingCart},
		{ID: "6", Merchant: "Netflix India", Date: "Oct 19", Amount: dec(-649), Category: "Entertainment", Icon: model.IconTV},
		{ID: "7", Merchant: "Swiggy", Date: "Oct 18", Amount: dec(-580), Category: "Dining", Icon: model.IconCoffee},
		{ID: "8", Merchant: "Reliance Digital", Date: "Oct 17", Amount: dec(-15999), Category: "Shopping", Icon: model.IconShoppingBag},
		{ID: "9", Merchant: "Metro Station", Date: "Oct 16", Amount: dec(-60), Category: "Transport", Icon: model.IconCar},
		{ID: "10", Merchant: "Zomato", Date: "Oct 15", Amount: dec(-720), Category: "Dining", Icon: model.IconCoffee},
	}
}

// SeedBudgets returns the sample budgets a new store starts with.
func SeedBudgets() []model.Budget {
	return []model.Budget{
		{ID: "1", Category: "Dining", Spent: dec(12500), Limit: dec(15000), Color: "#eab308"},
		{ID: "2", Category: "Transport", Spent: dec(3200), Limit: dec(5000), Color: "#22c55e"},
		{ID: "3", Category: "Groceries", Spent: dec(8900), Limit: dec(10000), Color: "#ef4444"},
		{ID: "4", Category: "Shopping", Spent: dec(18500), Limit: dec(25000), Color: "#3b82f6"},
		{ID: "5", Category: "Entertainment", Spent: dec(2500), Limit: dec(4000), Color: "#a855f7"},
	}
}

// SeedGoals returns the sample savings goals a new store starts with.
func SeedGoals() []model.SavingsGoal {
	return []model.SavingsGoal{
		{ID: "1", Name: "Goa Trip", Current: dec(45000), Target: dec(80000), Icon: "plane", Color: "blue"},
		{ID: "2", Name: "New iPhone", Current: dec(35000), Target: dec(120000), Icon: "laptop", Color: "purple"},
		{ID: "3", Name: "Wedding Fund", Current: dec(150000), Target: dec(500000), Icon: "shirt", Color: "pink"},
	}
}
