package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/lr4302179-jpg/backend-elchicho/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Fixed-window counters keyed by client IP, kept in process memory. Good
// enough for a single instance; a multi-instance deployment would move the
// counters to Redis.

type ipBucket struct {
	mu        sync.Mutex
	count     int
	windowEnd time.Time
}

// take consumes one slot from the bucket. It returns false when the window's
// budget is spent, plus the instant the window resets.
func (b *ipBucket) take(limit int, window time.Duration) (bool, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.windowEnd) {
		b.count = 0
		b.windowEnd = now.Add(window)
	}
	b.count++
	return b.count <= limit, b.windowEnd
}

type bucketMap struct {
	mu      sync.Mutex
	buckets map[string]*ipBucket
}

func newBucketMap() *bucketMap {
	return &bucketMap{buckets: make(map[string]*ipBucket)}
}

func (m *bucketMap) get(ip string) *ipBucket {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[ip]
	if !ok {
		b = &ipBucket{}
		m.buckets[ip] = b
	}
	return b
}

func (m *bucketMap) purgeExpired(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	purged := 0
	for ip, b := range m.buckets {
		b.mu.Lock()
		if now.After(b.windowEnd) {
			delete(m.buckets, ip)
			purged++
		}
		b.mu.Unlock()
	}
	return purged
}

var (
	loginBuckets = newBucketMap()
	apiBuckets   = newBucketMap()
)

// LoginRateLimiter throttles credential endpoints to 20 attempts per minute
// per IP. Admin login, client login and client register all spend from the
// same per-IP budget.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, _ := loginBuckets.get(c.ClientIP()).take(20, time.Minute)
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many attempts, retry in a minute"))
			return
		}
		c.Next()
	}
}

// RateLimiter throttles any route group to limit requests per window per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := apiBuckets.get(c.ClientIP()).take(limit, window)
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests"))
			return
		}
		c.Next()
	}
}

const purgeInterval = 5 * time.Minute

// Expired buckets are swept periodically so one-off IPs do not pile up.
func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			n := loginBuckets.purgeExpired(now) + apiBuckets.purgeExpired(now)
			if n > 0 {
				log.Debug().Int("purged", n).Msg("rate limiter buckets swept")
			}
		}
	}()
}
