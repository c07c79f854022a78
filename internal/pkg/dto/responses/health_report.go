package responses

type HealthReport struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	Title       string `json:"title"`
	ReportType  string `json:"report_type"`
	Description string `json:"description,omitempty"`
	ReportDate  string `json:"report_date,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
