package toribash

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lukehollenback/toribank/market"
)

//
// Inventory retrieves a page of the specified user's inventory, starting at the provided offset and
// leaving out the provided inventory ids. A nil user means the authenticated user.
//
func (o *Client) Inventory(ctx context.Context, user *market.UserRef, offset int, excludeIDs ...int) (market.Response, error) {
	var userID int

	if user == nil {
		if !o.LoggedIn() {
			return nil, fmt.Errorf("%s: %w", market.GetInventory, market.ErrNotLoggedIn)
		}

		userID = o.userID
	} else {
		var err error

		if userID, err = o.nameToID(ctx, *user); err != nil {
			return nil, err
		}
	}

	o.logger.Printf("Getting inventory for user: %d", userID)

	params := url.Values{
		userIDKey: {strconv.Itoa(userID)},
		offsetKey: {strconv.Itoa(offset)},
	}

	if len(excludeIDs) > 0 {
		params.Set(excludeIDsKey, commaSeparated(excludeIDs))
	}

	resp, err := o.bankAjax(ctx, market.GetInventory, params)
	if err != nil {
		return nil, err
	}

	o.logger.Print("Retrieved user inventory.")

	return resp, nil
}

//
// Items retrieves the specified item instances, whoever's inventory they are in.
//
func (o *Client) Items(ctx context.Context, inventoryIDs ...int) (market.Response, error) {
	if len(inventoryIDs) == 0 {
		return nil, market.NewArgumentError(market.GetItems.String(), "requires at least one inventory id")
	}

	o.logger.Print("Getting items...")

	resp, err := o.bankAjax(ctx, market.GetItems, url.Values{inventoryIDKey: {commaSeparated(inventoryIDs)}})
	if err != nil {
		return nil, err
	}

	o.logger.Print("Retrieved items.")

	return resp, nil
}
