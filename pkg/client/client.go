package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/naveenspark/chipvax/pkg/domain"
)

// DefaultBaseURL is the public CRSZ registry host.
const DefaultBaseURL = "https://www.crsz.sk"

const (
	authenticatePath   = "/admin/api/authenticate"
	transponderPath    = "/admin/api/animals-register/animals/transponder/"
	addVaccinationPath = "/admin/api/animals-register/animals/add-vaccination/"
)

// AddVaccinationRequest is the payload for registering a vaccination on an animal.
type AddVaccinationRequest struct {
	ID              int                      `json:"id"`
	UserID          string                   `json:"userId"`
	ChangeID        string                   `json:"changeId"`
	Vaccination     domain.VaccinationRecord `json:"vaccination"`
	LastVaccination domain.VaccinationRecord `json:"lastVaccination"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client is the registry API client. It authenticates lazily on the first
// call that needs a session and reuses the token for its lifetime.
// A Client is not safe for concurrent use.
type Client struct {
	baseURL    string
	creds      credentials
	httpClient *http.Client

	// token is empty until Login succeeds.
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a new, unauthenticated API client.
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		creds:   credentials{Username: username, Password: password},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated reports whether a session token has been obtained.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Login exchanges the credentials for a session token and caches it.
func (c *Client) Login(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodPost, authenticatePath, c.creds, false)
	if err != nil {
		return fmt.Errorf("client.Login: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	token := resp.Header.Get("Authorization")
	if token == "" {
		return fmt.Errorf("client.Login: %w", ErrNoAuthorization)
	}
	c.token = token
	return nil
}

// FindAnimal resolves a chip number to the registry's animal id.
// It returns ErrAnimalNotFound unless exactly one animal matches.
func (c *Client) FindAnimal(ctx context.Context, chip string) (int, error) {
	var animals []domain.Animal
	if err := c.get(ctx, transponderPath+url.PathEscape(chip), &animals); err != nil {
		return 0, fmt.Errorf("client.FindAnimal: %w", err)
	}
	if len(animals) != 1 {
		return 0, fmt.Errorf("client.FindAnimal %s: %d matches: %w", chip, len(animals), ErrAnimalNotFound)
	}
	return animals[0].ID, nil
}

// AddVaccination registers v on the animal, attributed to userID.
func (c *Client) AddVaccination(ctx context.Context, animalID int, userID string, v domain.Vaccination) error {
	req := AddVaccinationRequest{
		ID:              animalID,
		UserID:          userID,
		ChangeID:        userID,
		Vaccination:     v.Record(),
		LastVaccination: v.LastRecord(),
	}
	if err := c.doRequest(ctx, http.MethodPut, addVaccinationPath+strconv.Itoa(animalID), req, nil); err != nil {
		return fmt.Errorf("client.AddVaccination: %w", err)
	}
	return nil
}

// session returns the cached token, logging in on first use.
func (c *Client) session(ctx context.Context) (string, error) {
	if c.token == "" {
		if err := c.Login(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.send(ctx, method, path, body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// send performs a request and returns the response if its status is 200.
// The caller owns the response body.
func (c *Client) send(ctx context.Context, method, path string, body any, authenticated bool) (*http.Response, error) {
	var token string
	if authenticated {
		var err error
		if token, err = c.session(ctx); err != nil {
			return nil, err
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close() //nolint:errcheck // best-effort close
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return nil, &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil {
			if apiErr.Message != "" {
				return nil, &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
			}
			if apiErr.Error != "" {
				return nil, &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
			}
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}
