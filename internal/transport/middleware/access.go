package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evekit/synctrack/internal/domain"
	"github.com/evekit/synctrack/pkg/ctxutil"
)

// Headers carrying an access key credential.
const (
	KeyIDHeader   = "X-Access-Key-Id"
	KeyHashHeader = "X-Access-Key-Hash"
)

type keyVerifier interface {
	Verify(ctx context.Context, keyID int64, digest string) (*domain.AccessKey, error)
}

type accessKeyCtxKey struct{}

// keyHolder lets outer middleware (Logger) see the key verified further in.
type keyHolder struct {
	key *domain.AccessKey
}

type keyHolderCtxKey struct{}

func withKeyHolder(r *http.Request) (*http.Request, *keyHolder) {
	h := &keyHolder{}
	return r.WithContext(context.WithValue(r.Context(), keyHolderCtxKey{}, h)), h
}

func holderFrom(r *http.Request) *keyHolder {
	h, _ := r.Context().Value(keyHolderCtxKey{}).(*keyHolder)
	return h
}

// AccessKeyFromCtx returns the key verified by AccessKey, if any.
func AccessKeyFromCtx(ctx context.Context) (*domain.AccessKey, bool) {
	k, ok := ctx.Value(accessKeyCtxKey{}).(*domain.AccessKey)
	return k, ok && k != nil
}

// AccessKey returns middleware that authenticates the request with the
// X-Access-Key-Id / X-Access-Key-Hash headers. Unknown keys, wrong hashes
// and expired keys get 401; the response does not say which.
func AccessKey(verifier keyVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(KeyIDHeader)
			digest := r.Header.Get(KeyHashHeader)
			if rawID == "" || digest == "" {
				writeError(w, http.StatusUnauthorized, "access key required")
				return
			}
			keyID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || keyID <= 0 {
				writeError(w, http.StatusUnauthorized, "invalid access key")
				return
			}

			key, err := verifier.Verify(r.Context(), keyID, digest)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrKeyExpired):
				logger.InfoContext(r.Context(), "access key rejected",
					slog.Int64("access_key_id", keyID),
					slog.String("reason", err.Error()),
				)
				writeError(w, http.StatusUnauthorized, "invalid access key")
				return
			default:
				logger.ErrorContext(r.Context(), "verify access key",
					slog.Int64("access_key_id", keyID),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if h := holderFrom(r); h != nil {
				h.key = key
			}
			ctx := ctxutil.WithAccessKeyID(r.Context(), key.ID)
			ctx = ctxutil.WithAccountID(ctx, key.AccountID)
			ctx = context.WithValue(ctx, accessKeyCtxKey{}, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
