package toribash

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/lukehollenback/toribank/market"
)

//
// Login posts the provided username and password digest to the forum's login form, fetches a fresh
// security token for the resulting session, and then asks the market who the session belongs to.
// The session state is only updated once all three steps have succeeded.
//
func (o *Client) Login(ctx context.Context, username string, passwordHash string) error {
	o.logger.Printf("Logging in %s...", o.au.Bold(username))

	//
	// Post the login form. The forum answers with an HTML page and a session cookie.
	//
	form := url.Values{
		loginUsernameKey:   {username},
		loginPasswordKey:   {""},
		loginMD5Key:        {passwordHash},
		loginMD5UTFKey:     {passwordHash},
		loginCookieUserKey: {"1"},
		loginDoKey:         {"login"},
		loginSessionKey:    {""},
		loginSecurityKey:   {loginGuestSecurity},
	}

	if _, err := o.request(ctx, http.MethodPost, LoginPath, nil, form); err != nil {
		return &market.LoginError{Kind: market.LoginNetwork, Err: err}
	}

	//
	// Fetch a security token for the session.
	//
	resp, err := o.request(ctx, http.MethodGet, BankPath, url.Values{bankOperationKey: {market.GetToken.String()}}, nil)
	if err != nil {
		return &market.LoginError{Kind: market.LoginNetwork, Err: err}
	}

	var token tokenPayload

	if err := resp.Decode(&token); err != nil {
		return &market.LoginError{Kind: market.LoginSchema, Err: err}
	}

	if token.Token == "" {
		return &market.LoginError{Kind: market.LoginAuth, Err: errors.New("no security token was issued")}
	}

	//
	// Resolve the authenticated user's id from the market status.
	//
	resp, err = o.toriMarket(ctx)
	if err != nil {
		return &market.LoginError{Kind: market.LoginNetwork, Err: err}
	}

	var status marketStatus

	if err := resp.Decode(&status); err != nil {
		return &market.LoginError{Kind: market.LoginSchema, Err: err}
	}

	if status.User == nil || status.User.UserID == 0 {
		return &market.LoginError{Kind: market.LoginSchema, Err: errors.New("market status does not name the user")}
	}

	o.token = token.Token
	o.userID = status.User.UserID

	o.logger.Printf("Logged in as userid %d.", o.au.Green(o.userID))

	return nil
}
