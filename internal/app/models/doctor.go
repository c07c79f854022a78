package models

// Slot is a wall-clock (start, end) pair in HH:MM format.
type Slot struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// DayAvailability declares the repeating weekly slots a doctor offers.
// DayOfWeek follows time.Weekday numbering, Sunday = 0.
type DayAvailability struct {
	DayOfWeek int    `json:"dayOfWeek" bson:"dayOfWeek"`
	Slots     []Slot `json:"slots" bson:"slots"`
}

type ConsultationFee struct {
	VideoCall float64 `json:"videoCall" bson:"videoCall"`
	InClinic  float64 `json:"inClinic" bson:"inClinic"`
}

// Doctor is the directory projection of a verified doctor account,
// keyed by the unique owning user id.
type Doctor struct {
	ID                string            `bson:"_id,omitempty"`
	UserID            string            `bson:"userId"`
	Specialties       []string          `bson:"specialties"`
	LicenseNumber     string            `bson:"licenseNumber"`
	YearsOfExperience int               `bson:"yearsOfExperience"`
	Hospital          string            `bson:"hospital,omitempty"`
	ConsultationFee   ConsultationFee   `bson:"consultationFee"`
	Languages         []string          `bson:"languages,omitempty"`
	Availability      []DayAvailability `bson:"availability"`
	TotalRating       float64           `bson:"totalRating"`
	ReviewsCount      int               `bson:"reviewsCount"`
	Bio               string            `bson:"bio,omitempty"`
	TimeModel         `bson:",inline"`
}

// DeclaresSlot reports whether the given slot start is part of the
// doctor's declared availability for that weekday.
func (d *Doctor) DeclaresSlot(dayOfWeek int, slotStart string) bool {
	for _, day := range d.Availability {
		if day.DayOfWeek != dayOfWeek {
			continue
		}
		for _, slot := range day.Slots {
			if slot.Start == slotStart {
				return true
			}
		}
	}
	return false
}
