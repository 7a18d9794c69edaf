package toribash

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lukehollenback/toribank/market"
)

//
// UserInfo retrieves the user info (username, TC, qi, etc.) of up to market.MaxBatchUsers users,
// referred to by username and/or user id. With no users, the authenticated user's info is
// retrieved.
//
func (o *Client) UserInfo(ctx context.Context, users ...market.UserRef) (market.Response, error) {
	resp, err := o.userInfo(ctx, users...)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (o *Client) userInfo(ctx context.Context, users ...market.UserRef) (*Response, error) {
	//
	// Lack of users means the authenticated user.
	//
	if len(users) == 0 {
		if !o.LoggedIn() {
			return nil, fmt.Errorf("%s: %w", market.GetUserInfo, market.ErrNotLoggedIn)
		}

		o.logger.Print("(Using own ID)")

		return o.userInfo(ctx, market.ID(o.userID))
	}

	if len(users) > market.MaxBatchUsers {
		return nil, market.NewArgumentError(
			market.GetUserInfo.String(),
			"can load no more than %d users at a time (got %d)", market.MaxBatchUsers, len(users),
		)
	}

	ids, err := o.namesToIDs(ctx, users...)
	if err != nil {
		return nil, err
	}

	joined := commaSeparated(ids)

	o.logger.Printf("Getting info for users: %s", joined)

	resp, err := o.bankAjax(ctx, market.GetUserInfo, url.Values{userIDKey: {joined}})
	if err != nil {
		return nil, err
	}

	o.logger.Print("Info retrieved.")

	return resp, nil
}

//
// namesToIDs turns the provided user references into user ids, in the same order. All usernames are
// resolved with a single batched user info lookup; when there are none, no lookup happens at all.
//
func (o *Client) namesToIDs(ctx context.Context, users ...market.UserRef) ([]int, error) {
	//
	// Gather up the distinct usernames that need resolving.
	//
	var names []string

	seen := make(map[string]bool)

	for _, user := range users {
		if key := strings.ToLower(user.Username()); user.IsName() && !seen[key] {
			seen[key] = true
			names = append(names, user.Username())
		}
	}

	resolved := make(map[string]int, len(names))

	if len(names) > 0 {
		resp, err := o.bankAjax(ctx, market.GetUserInfo, url.Values{usernameKey: {strings.Join(names, ",")}})
		if err != nil {
			return nil, err
		}

		found, err := resp.Users()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", market.GetUserInfo, err)
		}

		for i, user := range found {
			key := strings.ToLower(user.Username)

			//
			// NOTE ~> Should the market ever leave usernames out of its records, fall back to matching
			//  them up by position, which is the order the lookup was asked in.
			//
			if key == "" && len(found) == len(names) {
				key = strings.ToLower(names[i])
			}

			resolved[key] = user.UserID
		}
	}

	//
	// Put the ids together in the order the users were given.
	//
	ids := make([]int, 0, len(users))

	for _, user := range users {
		if !user.IsName() {
			ids = append(ids, user.UserID())

			continue
		}

		id, ok := resolved[strings.ToLower(user.Username())]
		if !ok {
			return nil, fmt.Errorf("%s: no user named %q", market.GetUserInfo, user.Username())
		}

		ids = append(ids, id)
	}

	return ids, nil
}

//
// nameToID resolves a single user reference.
//
func (o *Client) nameToID(ctx context.Context, user market.UserRef) (int, error) {
	ids, err := o.namesToIDs(ctx, user)
	if err != nil {
		return 0, err
	}

	return ids[0], nil
}
