// Package users talks to the user service: login, registration and profile
// lookups. When no base URL is configured the client serves deterministic
// fake data so the front-end runs standalone.
package users

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"qualitywash.cl/web/internal/backend"
)

const basePath = "/api/usuarios"

// Client issues calls against the user service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a user service client. An empty baseURL enables the fake.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    backend.NewHTTPClient(),
	}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Account is the login response: identity plus the bearer token the rest of
// the session rides on.
type Account struct {
	ID       int    `json:"id"`
	FullName string `json:"nombreCompleto"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

// User mirrors the user service's registration record.
type User struct {
	ID        int    `json:"id,omitempty"`
	Kind      string `json:"tipoUsuario"`
	RUN       string `json:"run"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	BirthDate string `json:"fechaNacimiento"`
	Password  string `json:"password,omitempty"`
}

// FullName joins the name parts for display.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Login exchanges credentials for an account and token.
func (c *Client) Login(ctx context.Context, creds Credentials) (Account, error) {
	if c.baseURL == "" {
		return fakeLogin(creds)
	}
	var acc Account
	err := backend.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+basePath+"/login", creds, &acc)
	return acc, err
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, u User) (User, error) {
	if c.baseURL == "" {
		return fakeRegister(u)
	}
	u.ID = 0
	var created User
	err := backend.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+basePath, u, &created)
	return created, err
}

// ByID fetches a user record by id.
func (c *Client) ByID(ctx context.Context, id int) (User, error) {
	if c.baseURL == "" {
		return fakeByID(id)
	}
	var u User
	err := backend.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+basePath+"/"+strconv.Itoa(id), nil, &u)
	return u, err
}

// ByEmail fetches a user record by email.
func (c *Client) ByEmail(ctx context.Context, email string) (User, error) {
	if c.baseURL == "" {
		return fakeByEmail(email)
	}
	var u User
	err := backend.DoJSON(ctx, c.http, http.MethodGet, c.baseURL+basePath+"/email/"+url.PathEscape(email), nil, &u)
	return u, err
}
