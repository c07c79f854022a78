package requests

type CreateMedicine struct {
	Name                 string  `json:"name" validate:"required,min=2,max=200"`
	Description          string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category             string  `json:"category" validate:"required,min=2,max=100"`
	Manufacturer         string  `json:"manufacturer,omitempty" validate:"omitempty,max=200"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	Stock                int     `json:"stock" validate:"gte=0"`
	RequiresPrescription bool    `json:"requires_prescription"`
}

type UpdateMedicine struct {
	Name                 string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description          string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category             string   `json:"category,omitempty" validate:"omitempty,min=2,max=100"`
	Manufacturer         string   `json:"manufacturer,omitempty" validate:"omitempty,max=200"`
	Price                *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock                *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	RequiresPrescription *bool    `json:"requires_prescription,omitempty"`
	IsActive             *bool    `json:"is_active,omitempty"`
}

type ListMedicines struct {
	Category string
	Search   string
	Page     int
	PageSize int
}
