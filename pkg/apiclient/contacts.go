package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) GenderStats(ctx context.Context) (*GenderStats, error) {
	stats := &GenderStats{}
	if _, err := c.doJSON(ctx, call{op: "gender_stats", method: http.MethodGet, path: "/persons/gender-stats"}, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) RecentContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if _, err := c.doJSON(ctx, call{op: "recent_contacts", method: http.MethodGet, path: "/persons/five-recent"}, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, in ContactInput) (*Contact, error) {
	contact := &Contact{}
	if _, err := c.doJSON(ctx, call{op: "create_contact", method: http.MethodPost, path: "/persons", in: in}, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) ContactsByCounty(ctx context.Context, countyName string) ([]Contact, error) {
	var contacts []Contact
	_, err := c.doJSON(ctx, call{
		op:     "contacts_by_county",
		method: http.MethodGet,
		path:   "/persons/county/" + url.PathEscape(countyName),
	}, &contacts)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) Contact(ctx context.Context, id int64) (*Contact, error) {
	contact := &Contact{}
	_, err := c.doJSON(ctx, call{
		op:     "get_contact",
		method: http.MethodGet,
		path:   "/persons/" + strconv.FormatInt(id, 10),
	}, contact)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, id int64, in ContactInput) (*Contact, error) {
	contact := &Contact{}
	_, err := c.doJSON(ctx, call{
		op:     "update_contact",
		method: http.MethodPut,
		path:   "/persons/" + strconv.FormatInt(id, 10),
		in:     in,
	}, contact)
	if err != nil {
		return nil, err
	}
	return contact, nil
}
