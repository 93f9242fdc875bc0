package models

// Table provisioning outcomes.
const (
	TableStatusSuccess = "success"
	TableStatusError   = "error"
)

// TableStatus reports the outcome for one table.
type TableStatus struct {
	Table  string `json:"table"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// SetupResult is returned by the schema provisioner.
type SetupResult struct {
	Message string        `json:"message"`
	Results []TableStatus `json:"results"`
}
