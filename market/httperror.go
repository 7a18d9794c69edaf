package market

import "fmt"

//
// HTTPError represents an error due to a non-2xx response from a market endpoint.
//
type HTTPError struct {
	statusCode int
	url        string
}

func NewHTTPError(statusCode int, url string) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
		url:        url,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

func (o *HTTPError) Error() string {
	return fmt.Sprintf("%s responded with a %d status code", o.url, o.statusCode)
}
