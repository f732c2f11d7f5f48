package models

// Summary aggregates the four collections the way the home page shows them.
type Summary struct {
	TotalIncome     float64        `json:"totalIncome"`
	TotalExpenses   float64        `json:"totalExpenses"`
	TotalAssets     float64        `json:"totalAssets"`
	TotalProperties float64        `json:"totalProperties"`
	TotalMoney      float64        `json:"totalMoney"`
	Currency        string         `json:"currency"`
	Formatted       SummaryDisplay `json:"formatted"`
}

type SummaryDisplay struct {
	TotalIncome     string `json:"totalIncome"`
	TotalExpenses   string `json:"totalExpenses"`
	TotalAssets     string `json:"totalAssets"`
	TotalProperties string `json:"totalProperties"`
	TotalMoney      string `json:"totalMoney"`
}
