package market

import (
	"fmt"
	"strconv"
)

//
// UserRef refers to a market user either by username or by numeric user id. Most operations accept
// a mix of both and resolve usernames to ids before talking to the market.
//
type UserRef struct {
	name   string
	id     int
	byName bool
}

//
// Name refers to a user by username.
//
func Name(username string) UserRef {
	return UserRef{name: username, byName: true}
}

//
// ID refers to a user by numeric user id.
//
func ID(userID int) UserRef {
	return UserRef{id: userID}
}

//
// Refs converts a mixed list of usernames (strings) and user ids (integers) into user references.
// Values that are already user references are passed through.
//
func Refs(users ...interface{}) ([]UserRef, error) {
	refs := make([]UserRef, 0, len(users))

	for _, user := range users {
		switch v := user.(type) {
		case string:
			refs = append(refs, Name(v))
		case int:
			refs = append(refs, ID(v))
		case int64:
			refs = append(refs, ID(int(v)))
		case UserRef:
			refs = append(refs, v)
		default:
			return nil, NewArgumentError("users", "cannot refer to a user with a %T", user)
		}
	}

	return refs, nil
}

func (o UserRef) IsName() bool {
	return o.byName
}

func (o UserRef) Username() string {
	return o.name
}

func (o UserRef) UserID() int {
	return o.id
}

func (o UserRef) String() string {
	if o.byName {
		return o.name
	}

	return strconv.Itoa(o.id)
}

//
// GoString makes references readable in %#v output and test failures.
//
func (o UserRef) GoString() string {
	if o.byName {
		return fmt.Sprintf("market.Name(%q)", o.name)
	}

	return fmt.Sprintf("market.ID(%d)", o.id)
}
