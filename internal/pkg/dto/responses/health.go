package responses

type HealthCheck struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
