package models

type Medicine struct {
	ID                   string   `bson:"_id,omitempty"`
	Name                 string   `bson:"name"`
	Composition          string   `bson:"composition,omitempty"`
	Manufacturer         string   `bson:"manufacturer,omitempty"`
	Category             string   `bson:"category"`
	Dosage               string   `bson:"dosage,omitempty"`
	Description          string   `bson:"description,omitempty"`
	Price                float64  `bson:"price"`
	Discount             float64  `bson:"discount"`
	Stock                int      `bson:"stock"`
	RequiresPrescription bool     `bson:"requiresPrescription"`
	SideEffects          []string `bson:"sideEffects,omitempty"`
	ImageURL             string   `bson:"imageUrl,omitempty"`
	IsActive             bool     `bson:"isActive"`
	TimeModel            `bson:",inline"`
}
