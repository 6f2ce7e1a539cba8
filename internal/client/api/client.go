// Package api is a thin HTTP client for the BookVault server. It keeps the
// bearer token received at login and attaches it to subsequent requests.
// The token is treated as opaque: the client never decodes its claims.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ivlasenko/bookvault/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Token returns the bearer token held for this session, empty until login.
func (c *Client) Token() string {
	return c.token
}

type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordBody struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type tokenBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type bookBody struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type detailBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

// do performs a JSON request and decodes a 200 response into out. Non-200
// statuses are mapped onto the shared sentinel errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.asError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) asError(resp *http.Response) error {
	var d detailBody
	_ = json.NewDecoder(resp.Body).Decode(&d)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		if d.Detail == "Username already exists" {
			return common.ErrUsernameTaken
		}
		return fmt.Errorf("bad request: %s", d.Detail)
	default:
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}

func (c *Client) SignUp(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", credentials{Username: username, Password: password}, nil)
}

// Login stores the received bearer token for the rest of the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var t tokenBody
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Username: username, Password: password}, &t); err != nil {
		return err
	}
	c.token = t.AccessToken
	return nil
}

// ChangePassword rotates the password and replaces the session token with
// the freshly issued one.
func (c *Client) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	var t tokenBody
	body := changePasswordBody{Username: username, OldPassword: oldPassword, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPut, "/auth/changepassword", body, &t); err != nil {
		return err
	}
	c.token = t.AccessToken
	return nil
}

func (c *Client) CreateBook(ctx context.Context, title, author string) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPost, "/books/", bookBody{Title: title, Author: author}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) ListBooks(ctx context.Context, skip, limit int) ([]Book, error) {
	var list []Book
	path := fmt.Sprintf("/books/?skip=%d&limit=%d", skip, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, title, author string) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), bookBody{Title: title, Author: author}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	var m messageBody
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, &m)
}
