package requests

type OrderLabTest struct {
	TestName                string  `json:"test_name" validate:"required,min=2,max=200"`
	Description             string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category                string  `json:"category" validate:"required,min=2,max=100"`
	Cost                    float64 `json:"cost" validate:"required,gt=0"`
	ScheduledDate           string  `json:"scheduled_date,omitempty" validate:"omitempty,date_only"`
	LabCenterName           string  `json:"lab_center_name,omitempty" validate:"omitempty,max=200"`
	LabCenterAddress        string  `json:"lab_center_address,omitempty" validate:"omitempty,max=500"`
	HomeCollectionAvailable bool    `json:"home_collection_available"`
	Notes                   string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateLabTestStatus struct {
	Status    string `json:"status" validate:"required,oneof='Sample Collected' 'In Progress' Completed Cancelled"`
	ReportURL string `json:"report_url,omitempty" validate:"omitempty,url"`
}
