package responses

type LabTest struct {
	ID                      string  `json:"id"`
	PatientID               string  `json:"patient_id"`
	TestName                string  `json:"test_name"`
	Description             string  `json:"description,omitempty"`
	Category                string  `json:"category"`
	Cost                    float64 `json:"cost"`
	Status                  string  `json:"status"`
	ScheduledDate           string  `json:"scheduled_date,omitempty"`
	ReportURL               string  `json:"report_url,omitempty"`
	LabCenterName           string  `json:"lab_center_name,omitempty"`
	LabCenterAddress        string  `json:"lab_center_address,omitempty"`
	HomeCollectionAvailable bool    `json:"home_collection_available"`
	Notes                   string  `json:"notes,omitempty"`
	CreatedAt               string  `json:"created_at,omitempty"`
}
