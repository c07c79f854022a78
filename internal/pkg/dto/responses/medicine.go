package responses

type Medicine struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description,omitempty"`
	Category             string  `json:"category"`
	Manufacturer         string  `json:"manufacturer,omitempty"`
	Price                float64 `json:"price"`
	Stock                int     `json:"stock"`
	RequiresPrescription bool    `json:"requires_prescription"`
	IsActive             bool    `json:"is_active"`
}
