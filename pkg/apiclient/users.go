package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func (c *Client) SignUp(ctx context.Context, creds Credentials) (*User, error) {
	return c.authenticate(ctx, "signup", "/auth/signup", creds)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	return c.authenticate(ctx, "login", "/auth/login", creds)
}

func (c *Client) authenticate(ctx context.Context, op, path string, creds Credentials) (*User, error) {
	user := &User{}
	resp, err := c.doJSON(ctx, call{op: op, method: http.MethodPost, path: path, in: creds}, user)
	if err != nil {
		return nil, err
	}
	user.Raw = append(user.Raw[:0], resp.body...)
	if user.Username == "" {
		user.Username = creds.Username
	}
	return user, nil
}

// LookupUser fetches a user by name and returns the entity tag of the
// response, empty when the API sent none.
func (c *Client) LookupUser(ctx context.Context, username string) (*User, string, error) {
	user := &User{}
	resp, err := c.doJSON(ctx, call{
		op:     "lookup_user",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(username),
	}, user)
	if err != nil {
		return nil, "", err
	}
	return user, resp.header.Get("ETag"), nil
}

// UpdateUser sends a partial update. ifMatch is sent as If-Match when non-empty.
func (c *Client) UpdateUser(ctx context.Context, id int64, update UserUpdate, ifMatch string) (*User, error) {
	cl := call{
		op:     "update_user",
		method: http.MethodPut,
		path:   "/users/" + strconv.FormatInt(id, 10),
		in:     update,
	}
	if ifMatch != "" {
		cl.header = http.Header{"If-Match": []string{ifMatch}}
	}
	user := &User{}
	if _, err := c.doJSON(ctx, cl, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword updates the password of the user named in change. A known
// UserID skips the lookup. Otherwise the user is looked up by name and the
// update is conditioned on the returned ETag, so a concurrent rename or
// modification yields ErrConcurrentModification instead of a silent overwrite.
func (c *Client) ChangePassword(ctx context.Context, change PasswordChange) (*User, error) {
	id := change.UserID
	var etag string
	if id == 0 {
		user, tag, err := c.LookupUser(ctx, change.Username)
		if err != nil {
			return nil, err
		}
		if user.Username != "" && !strings.EqualFold(user.Username, change.Username) {
			return nil, errors.Wrapf(ErrConcurrentModification, "lookup of %q returned %q", change.Username, user.Username)
		}
		if user.ID == 0 {
			return nil, &Error{Op: "lookup_user", StatusCode: http.StatusNotFound, Message: "User not found"}
		}
		id = user.ID
		etag = tag
	}
	return c.UpdateUser(ctx, id, UserUpdate{Username: change.Username, Password: change.Password}, etag)
}
