package toribash

import (
	"encoding/json"
	"net/http"

	"github.com/lukehollenback/toribank/market"
)

var _ market.Response = (*Response)(nil)

//
// Response implements the market.Response interface for wrapped responses from the forum's market
// endpoints.
//
type Response struct {
	response *http.Response
	body     []byte
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

func (o *Response) Decode(v interface{}) error {
	return json.Unmarshal(o.body, v)
}

//
// Map decodes the response payload into a generic JSON object.
//
func (o *Response) Map() (map[string]interface{}, error) {
	var payload map[string]interface{}

	if err := o.Decode(&payload); err != nil {
		return nil, err
	}

	return payload, nil
}

//
// Users decodes the "users" list that user info responses carry.
//
func (o *Response) Users() ([]User, error) {
	var payload usersPayload

	if err := o.Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Users, nil
}
