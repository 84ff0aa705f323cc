package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// --- User Methods ---

// CurrentUser returns the account the client is authenticated as.
func (c *Client) CurrentUser(ctx context.Context) (*CurrentUser, error) {
	data, err := c.get(ctx, "/wiki/rest/api/user/current")
	if err != nil {
		return nil, err
	}
	return decode[CurrentUser](data)
}

// LookupUsers resolves account ids through the users-bulk endpoint. Error
// statuses are reported in UsersLookup.Status instead of as an error; only
// transport and decode failures are returned as errors.
func (c *Client) LookupUsers(ctx context.Context, accountIDs []string) (UsersLookup, error) {
	body := map[string][]string{"accountIds": accountIDs}
	data, status, err := c.send(ctx, http.MethodPost, "/wiki/api/v2/users-bulk", body)
	if err != nil {
		return UsersLookup{Status: status}, err
	}

	out := UsersLookup{Status: status}
	if status != http.StatusOK {
		return out, nil
	}

	var payload struct {
		Results []User `json:"results"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	out.Results = payload.Results
	return out, nil
}
