package toribash

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lukehollenback/toribank/market"
)

//
// SendItems transfers the specified item instances to the specified user. Unless told not to, the
// transfer is put to the client's confirmation policy first, and a declined transfer returns a nil
// response without anything having been sent.
//
func (o *Client) SendItems(ctx context.Context, to market.UserRef, inventoryIDs []int, opts market.SendItemsOptions) (market.Response, error) {
	if !o.LoggedIn() {
		return nil, fmt.Errorf("%s: %w", market.SendItems, market.ErrNotLoggedIn)
	}

	if len(inventoryIDs) == 0 {
		return nil, market.NewArgumentError(market.SendItems.String(), "requires at least one inventory id")
	}

	o.logger.Printf("Sending items to %s...", o.au.Bold(to))

	userID, err := o.nameToID(ctx, to)
	if err != nil {
		return nil, err
	}

	ids := commaSeparated(inventoryIDs)

	params := url.Values{
		tokenKey:          {o.token},
		userIDKey:         {strconv.Itoa(userID)},
		inventoryIDKey:    {ids},
		messageKey:        {opts.Message},
		omitItemErrorsKey: {flag(!opts.FailOnItemErrors)},
		adminOverrideKey:  {flag(opts.UseAdminOverride)},
		viaShopAdminKey:   {flag(opts.ViaShopAdmin)},
	}

	if !opts.NoConfirm && !o.confirm(fmt.Sprintf(":: Send %s to userid %d? (y/n) ", ids, userID)) {
		o.logger.Print("Item transfer declined.")

		return nil, nil
	}

	resp, err := o.bankAjax(ctx, market.SendItems, params)
	if err != nil {
		return nil, err
	}

	o.logger.Printf("Sent items %s to userid %d.", ids, userID)

	return resp, nil
}

//
// SendTC transfers the specified amount of TC to the specified user, from the authenticated user
// unless another sender is given. Confirmation works exactly as it does for SendItems.
//
func (o *Client) SendTC(ctx context.Context, to market.UserRef, amount decimal.Decimal, opts market.SendTCOptions) (market.Response, error) {
	if !o.LoggedIn() {
		return nil, fmt.Errorf("%s: %w", market.SendTC, market.ErrNotLoggedIn)
	}

	o.logger.Printf("Sending TC to %s...", o.au.Bold(to))

	from := market.ID(o.userID)
	if opts.From != nil {
		from = *opts.From
	}

	//
	// Resolve the sender and the receiver together so that at most one lookup is made.
	//
	ids, err := o.namesToIDs(ctx, from, to)
	if err != nil {
		return nil, err
	}

	fromID, toID := ids[0], ids[1]

	params := url.Values{
		amountKey:        {amount.String()},
		fromUserIDKey:    {strconv.Itoa(fromID)},
		toUserIDKey:      {strconv.Itoa(toID)},
		messageKey:       {opts.Message},
		adminOverrideKey: {flag(opts.UseAdminOverride)},
		viaShopAdminKey:  {flag(opts.ViaShopAdmin)},
		tokenKey:         {o.token},
	}

	if !opts.NoConfirm && !o.confirm(fmt.Sprintf(":: Send %s TC to userid %d? (y/n) ", amount, toID)) {
		o.logger.Print("TC transfer declined.")

		return nil, nil
	}

	resp, err := o.bankAjax(ctx, market.SendTC, params)
	if err != nil {
		return nil, err
	}

	o.logger.Printf("Sent %s TC to userid %d.", o.au.Green(amount), toID)

	return resp, nil
}
