package market

//
// APIError generically provides an interface to objects that represent a first-class error provided
// in the response of a request against the market's API.
//
type APIError interface {
	error

	//
	// Message returns the actual error message provided by the API.
	//
	Message() string
}
