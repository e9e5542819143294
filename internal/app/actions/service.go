// Package actions implements the user-triggered mutations. Every handler
// follows the same state machine: validate client-side, call the backend,
// and on success refresh the whole Store through the Loader. Handlers never
// write fetched data into the Store themselves.
package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/loader"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/normalize"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
	"github.com/campuslink/portal/internal/pkg/token"
)

// Service executes user-triggered actions against the backend
type Service struct {
	client *client.Client
	store  *state.Store
	loader *loader.Loader
	logger zerolog.Logger
}

// NewService creates the action Service
func NewService(apiClient *client.Client, store *state.Store, ldr *loader.Loader, logger zerolog.Logger) *Service {
	return &Service{
		client: apiClient,
		store:  store,
		loader: ldr,
		logger: logger,
	}
}

// submitGuarded runs a form-bound handler under the duplicate-submission
// guard. A second trigger while one runs is a no-op error without any
// network call; the flag clears on every exit path.
func (s *Service) submitGuarded(fn func() error) error {
	if !s.store.BeginSubmit() {
		return apperrors.ErrSubmissionInProgress
	}
	defer s.store.EndSubmit()
	return fn()
}

// refresh runs the full post-mutation reload
func (s *Service) refresh(ctx context.Context) error {
	return s.loader.LoadAll(ctx)
}

// requireFields validates mandatory fields before any network call
func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return apperrors.NewRequiredFieldError(name)
		}
	}
	return nil
}

// confirmDelete enforces the destructive-action confirmation step
func confirmDelete(req dto.DeleteRequest) error {
	if req.ID == "" {
		return apperrors.NewRequiredFieldError("id")
	}
	if !req.Confirmed {
		return apperrors.ErrConfirmationRequired
	}
	return nil
}

// createdID pulls the canonical id of a newly created entity out of a
// creation response so the view can flag it once. Creation responses wrap
// the record under varying keys; missing ids just skip the highlight.
func createdID(payload json.RawMessage, keys ...string) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return ""
	}
	for _, key := range keys {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		var record map[string]any
		if err := normalize.Into(decodeAny(inner), &record); err != nil {
			continue
		}
		if id, ok := record["id"].(string); ok {
			return id
		}
	}
	return ""
}

func decodeAny(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// Login authenticates against the backend and installs the session locally.
// The account comes from the response body when the backend sends one, and
// from the token claims otherwise.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*models.Account, error) {
	if err := requireFields(map[string]string{
		"registeredId": req.RegisteredID,
		"password":     req.Password,
		"role":         req.Role,
	}); err != nil {
		return nil, err
	}

	payload, err := s.client.Call(ctx, http.MethodPost, "/auth/login", map[string]string{
		"registeredId": req.RegisteredID,
		"password":     req.Password,
		"role":         req.Role,
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, apperrors.NewHTTPError(http.StatusOK, "malformed login response")
	}
	if body.Token == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account := &models.Account{}
	if len(body.User) > 0 {
		if err := normalize.Into(decodeAny(body.User), account); err != nil {
			return nil, err
		}
	}
	if account.ID == "" {
		claims, err := token.Decode(body.Token)
		if err != nil {
			return nil, err
		}
		account.ID = claims.UserID
		account.FullName = claims.FullName
		account.Role = models.Role(claims.Role)
	}

	s.client.SetToken(body.Token)
	s.store.SetCurrentUser(account)
	s.logger.Info().Str("userID", account.ID).Str("role", string(account.Role)).Msg("Logged in")

	if err := s.refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Initial load after login failed")
	}

	return account, nil
}

// Token returns the backend token of the current session
func (s *Service) Token() string {
	return s.client.Token()
}

// Resume reinstalls a persisted session without re-authenticating
func (s *Service) Resume(account *models.Account, backendToken string) {
	s.client.SetToken(backendToken)
	s.store.SetCurrentUser(account)
}

// Logout clears the session and the entire local state
func (s *Service) Logout() {
	s.client.SetToken("")
	s.store.Reset()
	s.logger.Info().Msg("Logged out")
}
