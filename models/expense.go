package models

type Expense struct {
	ID          ID      `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (e Expense) RecordID() ID { return e.ID }

func (e Expense) WithID(id ID) Expense {
	e.ID = id
	return e
}

type CreateExpenseRequest struct {
	Amount      *float64       `json:"amount" binding:"required"`
	Category    *string        `json:"category" binding:"required"`
	Date        *string        `json:"date" binding:"required"`
	Description OptionalString `json:"description"`
}

func (r CreateExpenseRequest) Record() Expense {
	return Expense{
		Amount:      deref(r.Amount),
		Category:    deref(r.Category),
		Date:        deref(r.Date),
		Description: string(r.Description),
	}
}
