package market

import "net/http"

//
// Response generically provides an interface to an object that represents a response from a call to
// one of the market's endpoints. The market's payloads are opaque JSON, so callers decode them into
// whatever shape they need.
//
type Response interface {

	//
	// Raw provides the raw HTTP response from the endpoint call that was made.
	//
	Raw() *http.Response

	//
	// Body provides the bytes of the response payload.
	//
	Body() []byte

	//
	// Decode unmarshals the response payload into the provided value.
	//
	Decode(v interface{}) error
}
