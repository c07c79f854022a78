package models

type HealthReport struct {
	ID          string `bson:"_id,omitempty"`
	PatientID   string `bson:"patientId"`
	Title       string `bson:"title"`
	ReportType  string `bson:"reportType"`
	Description string `bson:"description,omitempty"`
	ObjectName  string `bson:"objectName"`
	FileSize    int64  `bson:"fileSize,omitempty"`
	ContentType string `bson:"contentType,omitempty"`
	ReportDate  string `bson:"reportDate,omitempty"`
	UploadedBy  string `bson:"uploadedBy,omitempty"`
	TimeModel   `bson:",inline"`
}
