// Package middleware provides request logging for the HTTP widget and the Connect API.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	pb "github.com/mmynk/billsplit/pkg/proto"
)

// friendScoped is implemented by requests that name a friend.
type friendScoped interface {
	GetFriendId() string
}

// friendCarrier is implemented by responses that return a friend.
type friendCarrier interface {
	GetFriend() *pb.Friend
}

// friendID picks the friend an RPC acted on, from the request or, for
// AddFriend, from the friend it created. resp must be nil for failed calls.
func friendID(req connect.AnyRequest, resp connect.AnyResponse) string {
	if m, ok := req.Any().(friendScoped); ok && m.GetFriendId() != "" {
		return m.GetFriendId()
	}
	if resp == nil {
		return ""
	}
	if m, ok := resp.Any().(friendCarrier); ok {
		return m.GetFriend().GetId()
	}
	return ""
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, duration, the friend involved (if any), and
// any error codes/messages.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{"procedure", req.Spec().Procedure}
			// Failed handlers return a typed nil response
			okResp := resp
			if err != nil {
				okResp = nil
			}
			if id := friendID(req, okResp); id != "" {
				attrs = append(attrs, "friend_id", id)
			}
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
				} else {
					slog.Error("RPC error", append(attrs, "error", err)...)
				}
			} else {
				slog.Info("RPC ok", attrs...)
			}

			return resp, err
		}
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging logs every HTTP request with its status and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// CORS adds CORS headers so the API can be called from another origin.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
