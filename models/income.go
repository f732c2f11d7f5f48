package models

type Income struct {
	ID          ID      `json:"id"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (i Income) RecordID() ID { return i.ID }

func (i Income) WithID(id ID) Income {
	i.ID = id
	return i
}

// CreateIncomeRequest uses pointers so that a missing field and a zero value
// can be told apart by the "required" rule.
type CreateIncomeRequest struct {
	Amount      *float64       `json:"amount" binding:"required"`
	Source      *string        `json:"source" binding:"required"`
	Date        *string        `json:"date" binding:"required"`
	Description OptionalString `json:"description"`
}

func (r CreateIncomeRequest) Record() Income {
	return Income{
		Amount:      deref(r.Amount),
		Source:      deref(r.Source),
		Date:        deref(r.Date),
		Description: string(r.Description),
	}
}
