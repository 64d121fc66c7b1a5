package bookstore

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/requests"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// APIResponse is the raw status and body of one bookstore API call.
type APIResponse struct {
	StatusCode int
	Body       string
}

// Client handles all bookstore API operations.
// It embeds *RunContext for shared run configuration.
type Client struct {
	*RunContext
}

func NewClient(rc *RunContext) *Client {
	return &Client{RunContext: rc}
}

// BookstoreAPIBuilder returns a new requests.Builder configured for the bookstore API.
func (c *Client) BookstoreAPIBuilder() *requests.Builder {
	result := requests.
		URL(c.Config.API.BaseURL).
		Client(&http.Client{Timeout: c.Config.RequestTimeout()}).
		AddValidator(acceptAnyStatus)
	if c.Transport != nil {
		result = result.Transport(c.Transport)
	} else if c.RecordDir != "" {
		result = result.Transport(requests.Record(nil, c.RecordDir))
	}
	return result
}

// GetUser fetches a user's details and books with a bearer token.
func (c *Client) GetUser(userID, token string, ctx context.Context) (APIResponse, error) {
	var result APIResponse
	err := c.BookstoreAPIBuilder().
		Path(c.Config.API.Endpoints.User+"/"+url.PathEscape(userID)).
		Bearer(token).
		ContentType("application/json").
		Handle(captureResponse(&result)).
		Fetch(ctx)
	c.logResponse("get user", result, err)
	return result, err
}

// Authorize checks a user's credentials.
func (c *Client) Authorize(userName, password string, ctx context.Context) (APIResponse, error) {
	return c.postCredentials(c.Config.API.Endpoints.Authorized, userName, password, ctx)
}

// GenerateToken exchanges a user's credentials for a bearer token.
func (c *Client) GenerateToken(userName, password string, ctx context.Context) (APIResponse, error) {
	return c.postCredentials(c.Config.API.Endpoints.GenerateToken, userName, password, ctx)
}

// RegisterUser creates a new user.
func (c *Client) RegisterUser(userName, password string, ctx context.Context) (APIResponse, error) {
	return c.postCredentials(c.Config.API.Endpoints.User, userName, password, ctx)
}

func (c *Client) postCredentials(path, userName, password string, ctx context.Context) (APIResponse, error) {
	var result APIResponse
	body, err := CredentialsPayload(userName, password)
	if err != nil {
		return result, err
	}
	err = c.BookstoreAPIBuilder().
		Path(path).
		Post().
		BodyBytes(body).
		ContentType("application/json").
		Handle(captureResponse(&result)).
		Fetch(ctx)
	c.logResponse("post "+path, result, err)
	return result, err
}

func (c *Client) logResponse(op string, res APIResponse, err error) {
	logger := c.logger()
	if err != nil {
		logger.Warn("Bookstore request failed", zap.String("op", op), zap.Error(err))
		return
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.Info("Bookstore error response",
			zap.String("op", op),
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body))
		return
	}
	logger.Debug("Bookstore response", zap.String("op", op), zap.Int("status", res.StatusCode))
}

// CredentialsPayload builds the {"userName":…,"password":…} body shared by the account endpoints.
func CredentialsPayload(userName, password string) ([]byte, error) {
	json, err := sjson.Set("", "userName", userName)
	if err != nil {
		return nil, err
	}
	json, err = sjson.Set(json, "password", password)
	if err != nil {
		return nil, err
	}
	return []byte(json), nil
}

func captureResponse(result *APIResponse) requests.ResponseHandler {
	return func(response *http.Response) error {
		result.StatusCode = response.StatusCode
		b, err := io.ReadAll(response.Body)
		if err != nil {
			return err
		}
		result.Body = string(b)
		return nil
	}
}
