package types

import "fmt"

// CustomError carries an HTTP status code alongside a message and an
// error type tag, for errors raised below the handler boundary.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
