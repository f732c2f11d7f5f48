package models

type Asset struct {
	ID            ID      `json:"id"`
	Name          string  `json:"name"`
	OriginalValue float64 `json:"originalValue"`
	CurrentValue  float64 `json:"currentValue"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
}

func (a Asset) RecordID() ID { return a.ID }

func (a Asset) WithID(id ID) Asset {
	a.ID = id
	return a
}

type CreateAssetRequest struct {
	Name          *string        `json:"name" binding:"required"`
	OriginalValue *float64       `json:"originalValue" binding:"required"`
	CurrentValue  *float64       `json:"currentValue" binding:"required"`
	Date          OptionalString `json:"date"`
	Description   OptionalString `json:"description"`
	Location      OptionalString `json:"location"`
}

func (r CreateAssetRequest) Record() Asset {
	return Asset{
		Name:          deref(r.Name),
		OriginalValue: deref(r.OriginalValue),
		CurrentValue:  deref(r.CurrentValue),
		Date:          string(r.Date),
		Description:   string(r.Description),
		Location:      string(r.Location),
	}
}
