package domain

import "errors"

// Envelope is the {error, message, code} result handed back to clients for
// mutating operations and failures.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Ok builds a successful envelope.
func Ok(code int, message string) Envelope {
	return Envelope{Error: false, Message: message, Code: code}
}

// Fail builds a failure envelope from err. Non-domain errors collapse to a
// generic 500 so internal details never reach the client.
func Fail(err error) Envelope {
	var de *Error
	if errors.As(err, &de) {
		return Envelope{Error: true, Message: de.Message, Code: de.Kind.HTTPStatus()}
	}
	return Envelope{Error: true, Message: "internal server error", Code: KindInternal.HTTPStatus()}
}
