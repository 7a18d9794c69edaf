package market

import (
	"errors"
	"fmt"
)

const (
	//
	// MaxBatchUsers is the most users that can be looked up in a single user info call.
	//
	MaxBatchUsers = 50
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
)

//
// ArgumentError represents a usage mistake by the caller that was caught before anything was sent to
// the market.
//
type ArgumentError struct {
	Op     string
	Reason string
}

func NewArgumentError(op string, format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{
		Op:     op,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (o *ArgumentError) Error() string {
	return fmt.Sprintf("'%s' %s", o.Op, o.Reason)
}

//
// LoginFailure is an enum that represents the reason a login attempt could not be completed.
//
type LoginFailure int

const (
	// LoginNetwork means the forum could not be reached or responded with an HTTP error.
	LoginNetwork LoginFailure = iota

	// LoginAuth means the forum answered but did not hand out a security token.
	LoginAuth

	// LoginSchema means a response could not be understood.
	LoginSchema
)

func (o LoginFailure) String() string {
	return [...]string{"network failure", "authentication failure", "unexpected response"}[o]
}

//
// LoginError is returned whenever a login attempt fails.
//
type LoginError struct {
	Kind LoginFailure
	Err  error
}

func (o *LoginError) Error() string {
	if o.Err == nil {
		return fmt.Sprintf("login failed (%s)", o.Kind)
	}

	return fmt.Sprintf("login failed (%s): %s", o.Kind, o.Err)
}

func (o *LoginError) Unwrap() error {
	return o.Err
}
