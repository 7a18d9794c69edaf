package toribash

import (
	"fmt"

	"github.com/lukehollenback/toribank/market"
)

var _ market.APIError = (*APIError)(nil)

//
// APIError implements the market.APIError interface for errors reported inside an otherwise
// successful response from the market.
//
type APIError struct {
	Op  string `json:"-"`
	Msg string `json:"error"`
}

func (o *APIError) Message() string {
	return o.Msg
}

func (o *APIError) Error() string {
	return fmt.Sprintf("the market returned an API error for '%s' (message: %s)", o.Op, o.Msg)
}

//
// populated returns whether or not the structure appears to actually hold an error. A payload that
// is not an object, or an object without an "error" field, leaves it empty.
//
func (o *APIError) populated() bool {
	return o != nil && o.Msg != ""
}
