package toribash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAcceptsNumericAndStringIDs(t *testing.T) {
	var users []User

	err := json.Unmarshal([]byte(`[{"userid": 16251, "username": "a"}, {"userid": "150863", "username": "b"}]`), &users)
	require.NoError(t, err)

	assert.Equal(t, []User{{UserID: 16251, Username: "a"}, {UserID: 150863, Username: "b"}}, users)
}

func TestUserRejectsMissingOrGarbageIDs(t *testing.T) {
	var user User

	assert.Error(t, json.Unmarshal([]byte(`{"username": "a"}`), &user))
	assert.Error(t, json.Unmarshal([]byte(`{"userid": "abc"}`), &user))
	assert.Error(t, json.Unmarshal([]byte(`{"userid": 1.5}`), &user))
}

func TestResponseDecoding(t *testing.T) {
	resp := &Response{body: []byte(`{"users": [{"userid": "7", "username": "me", "tc": 100}]}`)}

	payload, err := resp.Map()
	require.NoError(t, err)
	assert.Contains(t, payload, "users")

	users, err := resp.Users()
	require.NoError(t, err)
	assert.Equal(t, []User{{UserID: 7, Username: "me"}}, users)

	_, err = (&Response{body: []byte(`[1, 2]`)}).Map()
	assert.Error(t, err)
}

func TestAPIErrorDetection(t *testing.T) {
	for body, want := range map[string]bool{
		`{"error": "Invalid security token"}`: true,
		`{"error": ""}`:                       false,
		`{"success": true}`:                   false,
		`[{"error": "not at the top"}]`:       false,
	} {
		apiErr := &APIError{Op: "send_tc"}
		_ = json.Unmarshal([]byte(body), apiErr)

		assert.Equal(t, want, apiErr.populated(), "body %s", body)
	}
}
