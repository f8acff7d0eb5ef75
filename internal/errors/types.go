package errors

// error body for every locally produced failure
type ErrorResponse struct {
	Error string `json:"error"`
}
