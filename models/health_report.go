package models

// HealthReport is a field report filed by an ASHA worker, stored under healthReports/{key}.
type HealthReport struct {
	Key              string   `json:"key,omitempty"`
	VillageName      string   `json:"villageName"`
	PatientAgeGroup  string   `json:"patientAgeGroup"`
	ReportedSymptoms []string `json:"reportedSymptoms"`
	ConfirmedDisease string   `json:"confirmedDisease"`
	ReporterName     string   `json:"reporterName"`
	ReporterContact  string   `json:"reporterContact"`
	ReportDate       string   `json:"reportDate"`
	AdditionalNotes  string   `json:"additionalNotes"`
	UserID           string   `json:"userId"`
	UserEmail        string   `json:"userEmail"`
	SubmittedAt      string   `json:"submittedAt"`
	SubmittedDate    string   `json:"submittedDate"`
}
