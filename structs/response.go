package structs

type ErrorResponse struct {
	Error string `json:"error"`
}
