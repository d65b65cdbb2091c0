package handlers

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/utils"
	"golang.org/x/time/rate"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// GetUserIDFromContext retrieves the userID set by AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// AuthConfig controls how AuthMiddleware treats requests without credentials.
// sessionCookie carries the access token for dashboard page loads. The JSON API
// only reads the Authorization header.
const sessionCookie = "fintrack_token"

type AuthConfig struct {
	Enforced      bool
	DefaultUserID int64
}

// AuthMiddleware resolves the user id from a bearer token. Requests without an
// Authorization header act as the default user unless auth is enforced; a header
// that does not validate is always rejected.
func AuthMiddleware(authService *security.AuthService, cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if cfg.Enforced {
					logger.FromContext(r.Context()).Debug("AuthMiddleware: Authorization header missing", "path", r.URL.Path)
					utils.SendJSONError(w, "Authorization header required", http.StatusUnauthorized)
					return
				}
				ctx := context.WithValue(r.Context(), userIDContextKey, cfg.DefaultUserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if tokenString == "" {
				utils.SendJSONError(w, "Malformed token", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger.FromContext(r.Context()).Warn("AuthMiddleware: Token validation failed", "path", r.URL.Path, "error", err)
				utils.SendJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID tags each request with an id, reusing a sane X-Request-ID from the client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.FromContext(r.Context()).Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"remoteAddr", r.RemoteAddr)
	})
}

// Recoverer turns a panic into a JSON 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Error("Panic while serving request",
					"method", r.Method, "path", r.URL.Path, "panic", rec, "stack", string(debug.Stack()))
				utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets the usual hardening headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; style-src 'self'; script-src 'self'; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}

// CORS allows the configured origins and answers preflight requests.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowed[origin] || allowed["*"]) {
				if allowed[origin] {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Add("Vary", "Origin")
				} else {
					// Wildcard: never combined with credentials.
					w.Header().Set("Access-Control-Allow-Origin", "*")
				}
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID, If-None-Match")
				w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IPRateLimiter keeps one token bucket per client IP. Idle buckets expire from the cache.
type IPRateLimiter struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewIPRateLimiter allows requests per window for each client IP.
func NewIPRateLimiter(requests int, window time.Duration) *IPRateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &IPRateLimiter{
		limiters: cache.New(2*window, 4*window),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, found := l.limiters.Get(ip); found {
		lim := v.(*rate.Limiter)
		l.limiters.SetDefault(ip, lim)
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	if err := l.limiters.Add(ip, lim, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, found := l.limiters.Get(ip); found {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// Allow reports whether a request from ip fits in its bucket.
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

// Middleware rejects over-limit clients with a JSON 429.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.Allow(ip) {
			logger.FromContext(r.Context()).Warn("Rate limit exceeded", "method", r.Method, "path", r.URL.Path, "ip", ip)
			w.Header().Set("Retry-After", "60")
			utils.SendJSONError(w, "Too many requests, please try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// BodyLimit caps request bodies at maxBytes.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				utils.SendJSONError(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NotFound and MethodNotAllowed keep router errors in the API's JSON shape.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONError(w, "Route not found: "+r.Method+" "+r.URL.Path, http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONError(w, "Method "+r.Method+" not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
}
