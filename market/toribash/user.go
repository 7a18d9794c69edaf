package toribash

import (
	"encoding/json"
	"fmt"
	"strconv"
)

//
// User is the part of a market user record that the client itself relies on. Everything else the
// market returns stays in the raw response.
//
type User struct {
	UserID   int
	Username string
}

type usersPayload struct {
	Users []User `json:"users"`
}

type marketStatus struct {
	User *User `json:"user"`
}

type tokenPayload struct {
	Token string `json:"token"`
}

//
// UnmarshalJSON implements the json.Unmarshaler interface for User structures. The forum is not
// consistent about whether it sends user ids as numbers or as strings, so both are accepted.
//
func (o *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID   json.RawMessage `json:"userid"`
		Username string          `json:"username"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Username = raw.Username

	if len(raw.UserID) == 0 {
		return fmt.Errorf("user record has no userid")
	}

	id, err := parseUserID(raw.UserID)
	if err != nil {
		return err
	}

	o.UserID = id

	return nil
}

func parseUserID(raw json.RawMessage) (int, error) {
	var number json.Number

	//
	// Strip the quotes off of string ids so that both forms go through the same number parsing.
	//
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		number = json.Number(str)
	} else if err := json.Unmarshal(raw, &number); err != nil {
		return 0, fmt.Errorf("failed to parse userid (%s)", raw)
	}

	id, err := strconv.Atoi(number.String())
	if err != nil {
		return 0, fmt.Errorf("failed to parse userid (%s)", raw)
	}

	return id, nil
}
