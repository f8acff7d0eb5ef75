package generate

// Request represents the request body for code generation
type Request struct {
	FullCode    *string `json:"full_code" binding:"required"`
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

// Response represents the response for code generation
type Response struct {
	GeneratedCode string `json:"generated_code"`
}
