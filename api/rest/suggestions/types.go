package suggestions

// request payload for line suggestions; keys are required, empty strings are fine
type Request struct {
	FullCode     *string `json:"full_code" binding:"required"`
	SelectedLine *string `json:"selected_line" binding:"required"`
}

// response payload carrying the raw model output
type Response struct {
	Suggestions string `json:"suggestions"`
}
