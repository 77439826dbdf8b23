package dto

// FieldError mirrors one entry of a request validation report.
type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Msg      string `json:"msg"`
	Value    string `json:"value"`
}

type ErrorResponse struct {
	Error string       `json:"error"`
	Data  []FieldError `json:"data,omitempty"`
}
