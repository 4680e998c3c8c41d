package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UploadRequest holds everything collected from a /upload invocation while
// the description modal is pending. It lives in memory only, for at most one
// session TTL.
type UploadRequest struct {
	InvokerID           string
	TargetChannelID     string
	ImageURL            string
	ImageFilename       string
	ImageContentType    string
	FulfilledRequestRef string
}

// EditRequest correlates an Edit Description button press with the modal
// submission that follows it.
type EditRequest struct {
	InvokerID string
	ChannelID string
	MessageID string
}

type pendingUpload struct {
	req     UploadRequest
	created time.Time
}

type pendingEdit struct {
	req     EditRequest
	created time.Time
}

// SessionTTL matches the platform's interaction token lifetime; a modal that
// has not been submitted by then can no longer be answered anyway.
const SessionTTL = 15 * time.Minute

// SessionStore correlates modal submissions with the interaction that opened
// the modal. Tokens are opaque, single-use, and expire after SessionTTL.
type SessionStore struct {
	mu      sync.Mutex
	uploads map[string]pendingUpload
	edits   map[string]pendingEdit
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		uploads: make(map[string]pendingUpload),
		edits:   make(map[string]pendingEdit),
	}
}

// PutUpload stores req and returns the token to embed in the modal CustomID.
func (s *SessionStore) PutUpload(req UploadRequest) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[token] = pendingUpload{req: req, created: time.Now()}
	return token
}

// TakeUpload consumes the session for token. It returns false for unknown,
// already-consumed or expired tokens.
func (s *SessionStore) TakeUpload(token string) (UploadRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.uploads[token]
	if !ok {
		return UploadRequest{}, false
	}
	delete(s.uploads, token)
	if time.Since(p.created) > SessionTTL {
		return UploadRequest{}, false
	}
	return p.req, true
}

// PutEdit stores req and returns the token to embed in the modal CustomID.
func (s *SessionStore) PutEdit(req EditRequest) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits[token] = pendingEdit{req: req, created: time.Now()}
	return token
}

// TakeEdit consumes the edit session for token.
func (s *SessionStore) TakeEdit(token string) (EditRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.edits[token]
	if !ok {
		return EditRequest{}, false
	}
	delete(s.edits, token)
	if time.Since(p.created) > SessionTTL {
		return EditRequest{}, false
	}
	return p.req, true
}

// Cleanup drops sessions older than SessionTTL. Called periodically by the
// bot's janitor ticker; abandoned modals leave sessions behind otherwise.
func (s *SessionStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, p := range s.uploads {
		if time.Since(p.created) > SessionTTL {
			delete(s.uploads, token)
		}
	}
	for token, p := range s.edits {
		if time.Since(p.created) > SessionTTL {
			delete(s.edits, token)
		}
	}
}

// Len reports the number of pending sessions of both kinds.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads) + len(s.edits)
}
