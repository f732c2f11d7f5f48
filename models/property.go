package models

// Property is a durable purchase whose worth is spread over the days it has
// been in use: Worth = Value / UsedTime. The client computes both derived
// fields before posting.
type Property struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	UsedTime    float64 `json:"usedtime"`
	Worth       float64 `json:"worth"`
	Description string  `json:"description"`
}

func (p Property) RecordID() ID { return p.ID }

func (p Property) WithID(id ID) Property {
	p.ID = id
	return p
}

type CreatePropertyRequest struct {
	Name        *string        `json:"name" binding:"required"`
	Value       *float64       `json:"value" binding:"required"`
	Date        *string        `json:"date" binding:"required"`
	UsedTime    *float64       `json:"usedtime" binding:"required,gt=0"`
	Worth       *float64       `json:"worth" binding:"required"`
	Description OptionalString `json:"description"`
}

func (r CreatePropertyRequest) Record() Property {
	return Property{
		Name:        deref(r.Name),
		Value:       deref(r.Value),
		Date:        deref(r.Date),
		UsedTime:    deref(r.UsedTime),
		Worth:       deref(r.Worth),
		Description: string(r.Description),
	}
}
