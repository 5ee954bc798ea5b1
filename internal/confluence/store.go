// Package confluence implements document.Store against the Confluence REST
// content API. Documents are read and written in the storage representation.
package confluence

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/agentstation/tablesync/internal/transport"
	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/document"
	"github.com/agentstation/tablesync/pkg/errors"
	"github.com/agentstation/tablesync/pkg/logging"
)

// Store is a document.Store backed by a Confluence site.
type Store struct {
	cfg    Config
	auth   transport.Authenticator
	client *transport.Client

	mu     sync.RWMutex
	spaces map[string]string
}

var _ document.Store = (*Store)(nil)

// New validates cfg and creates a store. Additional transport options are
// applied after the configured timeout.
func New(cfg Config, opts ...transport.Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts = append([]transport.Option{
		transport.WithTimeout(cfg.timeout()),
		transport.WithUserAgent("tablesync"),
	}, opts...)

	auth := transport.AuthenticatorFor(cfg.Username, cfg.Token)
	return &Store{
		cfg:    cfg,
		auth:   auth,
		client: transport.New(auth, cfg.Token, opts...),
		spaces: make(map[string]string),
	}, nil
}

// content mirrors the subset of the content resource tablesync reads and writes.
type content struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Status  string         `json:"status"`
	Title   string         `json:"title"`
	Space   *contentSpace  `json:"space,omitempty"`
	Body    contentBody    `json:"body"`
	Version contentVersion `json:"version"`
}

type contentSpace struct {
	Key string `json:"key"`
}

type contentBody struct {
	Storage contentStorage `json:"storage"`
}

type contentStorage struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type contentVersion struct {
	Number int `json:"number"`
}

// Fetch retrieves document id with its storage body, version and space.
func (s *Store) Fetch(ctx context.Context, id string) (*document.Document, error) {
	endpoint := s.cfg.contentURL(url.PathEscape(id)) + "?expand=" + url.QueryEscape(constants.ContentExpand)

	resp, err := s.client.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.NewFetchError(id, err)
	}

	var c content
	if err := transport.DecodeResponse(ctx, resp, &c); err != nil {
		return nil, errors.NewFetchError(id, s.authFailure(err))
	}

	doc := &document.Document{
		ID:      c.ID,
		Title:   c.Title,
		Version: c.Version.Number,
		Body:    c.Body.Storage.Value,
	}
	if doc.ID == "" {
		doc.ID = id
	}
	if c.Space != nil {
		doc.SpaceKey = c.Space.Key
		s.mu.Lock()
		s.spaces[id] = c.Space.Key
		s.mu.Unlock()
	}

	logging.FromContext(ctx).Debug().
		Str("document_id", id).
		Int("version", doc.Version).
		Int("body_bytes", len(doc.Body)).
		Msg("fetched document")

	return doc, nil
}

// Replace writes body as version of document id. A 409 response becomes a
// *errors.CommitConflictError; any other non-2xx status a *errors.CommitError.
func (s *Store) Replace(ctx context.Context, id, title string, version int, body string) (int, error) {
	payload := content{
		ID:     id,
		Type:   constants.ContentTypePage,
		Status: constants.ContentStatusCurrent,
		Title:  title,
		Body: contentBody{Storage: contentStorage{
			Value:          body,
			Representation: constants.StorageRepresentation,
		}},
		Version: contentVersion{Number: version},
	}
	if key := s.spaceKey(id); key != "" {
		payload.Space = &contentSpace{Key: key}
	}

	resp, err := s.client.PutJSON(ctx, s.cfg.contentURL(url.PathEscape(id)), payload)
	if err != nil {
		return 0, errors.NewCommitError(id, 0, "request failed", err)
	}

	if transport.IsSuccess(resp.StatusCode) {
		transport.Discard(ctx, resp)
		return resp.StatusCode, nil
	}

	apiErr := transport.ResponseError(resp)
	transport.Discard(ctx, resp)

	if resp.StatusCode == http.StatusConflict {
		return resp.StatusCode, errors.NewCommitConflictError(id, version, resp.StatusCode, apiErr.Message)
	}
	return resp.StatusCode, errors.NewCommitError(id, resp.StatusCode, apiErr.Message, s.authFailure(apiErr))
}

// authFailure wraps err in an *errors.AuthenticationError when the site
// rejected the credentials (401 or 403).
func (s *Store) authFailure(err error) error {
	if !errors.IsUnauthorized(err) {
		return err
	}
	return &errors.AuthenticationError{
		Method:  s.auth.Method(),
		Message: "credentials rejected by " + s.cfg.BaseURL,
		Err:     err,
	}
}

func (s *Store) spaceKey(id string) string {
	if s.cfg.SpaceKey != "" {
		return s.cfg.SpaceKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spaces[id]
}
