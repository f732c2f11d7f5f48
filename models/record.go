package models

// Record is implemented by every stored entity. WithID returns a copy of the
// record carrying the given identifier.
type Record[T any] interface {
	RecordID() ID
	WithID(ID) T
}

// Draft is the validated POST body of a resource. Its binding tags describe
// which fields are required; Record converts it into a record without id.
type Draft[T any] interface {
	Record() T
}

// Resource describes one persisted collection.
type Resource struct {
	Name       string // URL segment, e.g. "income"
	Collection string // key inside the JSON document, e.g. "incomes"
	Entity     string // human name used in messages, e.g. "Income"
	File       string // document name inside the data directory
}

var (
	IncomeResource   = Resource{Name: "income", Collection: "incomes", Entity: "Income", File: "income.json"}
	ExpenseResource  = Resource{Name: "expenses", Collection: "expenses", Entity: "Expense", File: "expenses.json"}
	AssetResource    = Resource{Name: "assets", Collection: "assets", Entity: "Asset", File: "assets.json"}
	PropertyResource = Resource{Name: "properties", Collection: "properties", Entity: "Property", File: "properties.json"}
)

// Resources lists every resource in the order the dashboard shows them.
var Resources = []Resource{IncomeResource, ExpenseResource, AssetResource, PropertyResource}

// LookupResource finds a resource by URL name.
func LookupResource(name string) (Resource, bool) {
	for _, r := range Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// DeleteRequest is the body of every DELETE endpoint.
type DeleteRequest struct {
	ID ID `json:"id"`
}
