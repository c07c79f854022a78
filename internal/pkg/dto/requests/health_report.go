package requests

type UploadHealthReport struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	ReportType  string `json:"report_type" validate:"required,oneof=lab-result prescription scan discharge-summary other"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReportDate  string `json:"report_date,omitempty" validate:"omitempty,date_only"`
}
