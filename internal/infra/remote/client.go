// Package remote implements service.ProfileStore over the profile HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"profilesync/config"
	"profilesync/internal/domain/entity"
	domainerrors "profilesync/internal/domain/errors"
	"profilesync/internal/domain/service"
	"profilesync/internal/errors"
	"profilesync/internal/usecase"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// scalarRoutes maps each scalar field to its route and JSON key.
var scalarRoutes = map[entity.Field]struct {
	path string
	key  string
}{
	entity.FieldName:         {"/profile/name", "name"},
	entity.FieldAge:          {"/profile/age", "age"},
	entity.FieldAboutText:    {"/profile/about", "aboutYou"},
	entity.FieldMomentCareer: {"/profile/moment-career", "momentCareer"},
	entity.FieldProfileImage: {"/profile/image", "profileImage"},
}

// setRoutes maps each set-valued field to its route.
var setRoutes = map[entity.Field]string{
	entity.FieldHabilities: "/profile/habilities",
}

// Client talks to the profile API with a bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client targeting the configured base URL.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Remote.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Remote.Timeout,
		},
		logger: logger,
		token:  cfg.Remote.AccessToken,
	}
}

// NewProfileStore exposes a Client as the domain contract.
func NewProfileStore(c *Client) service.ProfileStore {
	return c
}

// SetAccessToken swaps the bearer token, e.g. after registering.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

type profileQuery struct {
	UserID string `url:"userId,omitempty"`
}

// FetchProfile implements service.ProfileStore.
func (c *Client) FetchProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	q := profileQuery{}
	if userID != uuid.Nil {
		q.UserID = userID.String()
	}
	values, err := query.Values(q)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	path := "/profile"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var profile entity.Profile
	if _, err := c.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// WriteScalar implements service.ProfileStore.
func (c *Client) WriteScalar(ctx context.Context, field entity.Field, value any) (*entity.Profile, error) {
	route, ok := scalarRoutes[field]
	if !ok {
		return nil, domainerrors.NewValidationError("unsupported_field", string(field), field)
	}

	return c.writeProfile(ctx, http.MethodPatch, route.path, map[string]any{route.key: value})
}

// WriteLinks implements service.ProfileStore.
func (c *Client) WriteLinks(ctx context.Context, links service.LinksInput) (*entity.Profile, error) {
	return c.writeProfile(ctx, http.MethodPatch, "/profile/links", links)
}

type orderBody struct {
	SocialLinksOrder []string `json:"socialLinksOrder"`
}

// WriteOrder implements service.ProfileStore.
func (c *Client) WriteOrder(ctx context.Context, order []entity.LinkField) ([]entity.LinkField, error) {
	var stored orderBody
	body := orderBody{SocialLinksOrder: entity.LinksOrderStrings(order)}

	found, err := c.do(ctx, http.MethodPut, "/user-profile/social-links-order", body, &stored)
	if err != nil {
		return nil, err
	}
	if !found || stored.SocialLinksOrder == nil {
		return nil, nil
	}

	return entity.ParseLinksOrder(stored.SocialLinksOrder), nil
}

// WriteSet implements service.ProfileStore.
func (c *Client) WriteSet(ctx context.Context, field entity.Field, values []string) (*entity.Profile, error) {
	path, ok := setRoutes[field]
	if !ok {
		return nil, domainerrors.NewValidationError("unsupported_field", string(field), field)
	}

	return c.writeProfile(ctx, http.MethodPatch, path, map[string][]string{string(field): values})
}

type locationBody struct {
	Location   string             `json:"location"`
	Visibility *entity.Visibility `json:"visibility,omitempty"`
}

// WriteLocation implements service.ProfileStore.
func (c *Client) WriteLocation(ctx context.Context, location string, visibility *entity.Visibility) (*entity.Profile, error) {
	return c.writeProfile(ctx, http.MethodPatch, "/profile/location", locationBody{Location: location, Visibility: visibility})
}

// WriteFocus implements service.ProfileStore.
func (c *Client) WriteFocus(ctx context.Context, focus service.FocusInput) (*entity.Profile, error) {
	return c.writeProfile(ctx, http.MethodPatch, "/profile/focus", focus)
}

// SubscriptionStatus implements service.ProfileStore.
func (c *Client) SubscriptionStatus(ctx context.Context) (*entity.SubscriptionStatus, error) {
	var status entity.SubscriptionStatus
	if _, err := c.do(ctx, http.MethodGet, "/subscription/status", nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// Register creates a profile and adopts the returned token.
func (c *Client) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	var out usecase.AuthOutput
	if _, err := c.do(ctx, http.MethodPost, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	c.SetAccessToken(out.AccessToken)

	return &out, nil
}

func (c *Client) writeProfile(ctx context.Context, method, path string, body any) (*entity.Profile, error) {
	var profile entity.Profile

	found, err := c.do(ctx, method, path, body, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &profile, nil
}

// do sends one request and decodes the envelope's data into out. It reports
// whether the response carried any data at all.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, domainerrors.NewSyncError(domainerrors.KindNetwork, "", errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("profile API unreachable", slog.String("method", method), slog.String("path", path), slog.Any("error", err))

		return false, domainerrors.NewSyncError(domainerrors.KindNetwork, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}

	var envelope domainerrors.RawSuccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		return false, domainerrors.NewSyncError(domainerrors.KindNetwork, "malformed response", errors.WithStack(err))
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, domainerrors.NewSyncError(domainerrors.KindNetwork, "malformed response", errors.WithStack(err))
	}

	return true, nil
}
