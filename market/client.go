package market

import (
	"context"

	"github.com/shopspring/decimal"
)

//
// Client generically provides an interface to an object that can be used to interact with an
// in-forum virtual goods market. Normally, this is the client used to do things like look up users,
// browse inventories, and move currency or items between users.
//
// Whenever an endpoint fails – whether due to a system failure, an HTTP error, or an API error –
// the error component of the return will be non-nil.
//
type Client interface {

	//
	// Login authenticates against the forum with the provided username and password digest, obtains
	// a security token, and resolves the authenticated user's id. Every other call that mutates
	// state requires this to have succeeded first.
	//
	Login(ctx context.Context, username string, passwordHash string) error

	//
	// UserInfo retrieves information about up to MaxBatchUsers users at once. When no users are
	// provided, the authenticated user is looked up instead.
	//
	UserInfo(ctx context.Context, users ...UserRef) (Response, error)

	//
	// Inventory retrieves a page of the specified user's inventory (the authenticated user's when
	// nil), starting at the provided offset and leaving out the provided inventory ids.
	//
	Inventory(ctx context.Context, user *UserRef, offset int, excludeIDs ...int) (Response, error)

	//
	// Items retrieves the specified item instances. At least one inventory id must be provided.
	//
	Items(ctx context.Context, inventoryIDs ...int) (Response, error)

	//
	// SendItems transfers the specified item instances to the specified user. If the transfer is
	// declined at confirmation, a nil response and a nil error are returned.
	//
	SendItems(ctx context.Context, to UserRef, inventoryIDs []int, opts SendItemsOptions) (Response, error)

	//
	// SendTC transfers the specified amount of TC to the specified user. If the transfer is declined
	// at confirmation, a nil response and a nil error are returned.
	//
	SendTC(ctx context.Context, to UserRef, amount decimal.Decimal, opts SendTCOptions) (Response, error)
}
