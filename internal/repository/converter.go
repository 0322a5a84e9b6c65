package repository

// nullable maps an empty string onto a SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
