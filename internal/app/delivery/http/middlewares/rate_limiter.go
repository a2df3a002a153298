package middlewares

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles screening mutations per account, falling back to the
// remote address for anonymous callers. A caller that exceeds the limit is
// blocked for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.requests <= 0 {
			next.ServeHTTP(w, req)
			return
		}

		key := limiterKey(req)
		if !r.allow(key) {
			r.log.Warn("RateLimiter.Limit caller blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
				zap.String("limiter_key", key),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil, key))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[key]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, key)
	}

	limiter, exists := r.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
		r.limiters[key] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[key] = now.Add(r.blockTime)
		return false
	}
	return true
}

func limiterKey(req *http.Request) string {
	if account, ok := models.AccountFromContext(req.Context()); ok {
		return "account:" + account.AccountID
	}
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		ip = req.RemoteAddr
	}
	return "ip:" + ip
}
