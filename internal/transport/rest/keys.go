package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/internal/transport/middleware"
)

// KeyHandler answers questions about the access key presented with the
// request. It must be mounted behind middleware.AccessKey.
type KeyHandler struct {
	now func() time.Time
}

// NewKeyHandler creates a KeyHandler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{now: time.Now}
}

// KeyResponse describes the presented key. The credential is never echoed.
type KeyResponse struct {
	ID           int64      `json:"id"`
	AccountID    uuid.UUID  `json:"account_id"`
	Name         string     `json:"name"`
	Mask         string     `json:"mask"`
	Capabilities []string   `json:"capabilities"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Limit        *time.Time `json:"limit,omitempty"`
}

// CheckResponse is the answer to a capability check.
type CheckResponse struct {
	KeyID      int64     `json:"key_id"`
	AccountID  uuid.UUID `json:"account_id"`
	Capability string    `json:"capability"`
	At         time.Time `json:"at"`
	Allowed    bool      `json:"allowed"`
}

// Self returns the presented key.
// GET /keys/self
func (h *KeyHandler) Self(w http.ResponseWriter, r *http.Request) {
	key, ok := middleware.AccessKeyFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "access key required")
		return
	}

	caps := key.Mask.Capabilities()
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.String()
	}

	writeJSON(w, http.StatusOK, KeyResponse{
		ID:           key.ID,
		AccountID:    key.AccountID,
		Name:         key.Name,
		Mask:         key.Mask.String(),
		Capabilities: names,
		ExpiresAt:    key.ExpiresAt,
		Limit:        key.Limit,
	})
}

// Check reports whether the presented key may read data of a capability
// recorded at a point in time.
// GET /keys/check?capability=ACCESS_ASSETS&at=2026-01-31T00:00:00Z (at defaults to now)
func (h *KeyHandler) Check(w http.ResponseWriter, r *http.Request) {
	key, ok := middleware.AccessKeyFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "access key required")
		return
	}

	c, err := domain.ParseCapability(r.URL.Query().Get("capability"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown capability")
		return
	}

	now := h.now().UTC()
	at := now
	if v := r.URL.Query().Get("at"); v != "" {
		at, err = time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "at must be RFC 3339")
			return
		}
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		KeyID:      key.ID,
		AccountID:  key.AccountID,
		Capability: c.String(),
		At:         at,
		Allowed:    key.CanRead(c, at, now),
	})
}
