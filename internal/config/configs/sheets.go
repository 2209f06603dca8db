package configs

// Sheets configures the Google Sheets read-through endpoint. Its variables
// carry no prefix.
type Sheets struct {
	SpreadsheetID string `env:"GOOGLE_SHEET_ID"`
	// CredentialsJSON is a service account key, either raw JSON or its
	// base64 encoding.
	CredentialsJSON string `env:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	Range           string `env:"GOOGLE_SHEET_RANGE" envDefault:"Sheet1"`
}

// Configured reports whether a spreadsheet id has been provided.
func (c Sheets) Configured() bool {
	return c.SpreadsheetID != ""
}
