package types

// SuccessEnvelope wraps every successful API payload under "data".
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error body. Message is safe to show to the
// shopper; Details carries field-level validation hints when allowed.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
