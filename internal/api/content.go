package api

import (
	"context"
	"net/url"
)

// --- Content Methods ---

// FooterComments returns the footer comments of a page in API order.
func (c *Client) FooterComments(ctx context.Context, pageID string) ([]Comment, error) {
	data, err := c.get(ctx, "/wiki/api/v2/pages/"+url.PathEscape(pageID)+"/footer-comments")
	if err != nil {
		return nil, err
	}
	list, err := decode[commentList](data)
	if err != nil {
		return nil, err
	}
	return list.Results, nil
}

// PageMetadata returns a page record with its version expanded.
func (c *Client) PageMetadata(ctx context.Context, pageID string) (*PageMetadata, error) {
	data, err := c.get(ctx, "/wiki/rest/api/content/"+url.PathEscape(pageID)+"?expand=version")
	if err != nil {
		return nil, err
	}
	return decode[PageMetadata](data)
}
