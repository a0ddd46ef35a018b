package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// slidingWindow is an in-memory per-IP counter. Good enough for a single
// instance; replace with a Redis limiter if the API ever scales out.
type slidingWindow struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	limit   int
	window  time.Duration
	mensaje string
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newSlidingWindow(limit int, window time.Duration, mensaje string) *slidingWindow {
	sw := &slidingWindow{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		mensaje: mensaje,
	}
	go sw.purgeLoop()
	return sw
}

func (sw *slidingWindow) allow(ip string) (bool, time.Time) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	entry, ok := sw.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(sw.window)}
		sw.entries[ip] = entry
	}
	entry.count++
	return entry.count <= sw.limit, entry.windowEnd
}

// purgeLoop drops IPs whose window already closed so the map doesn't grow
// with one-off clients.
func (sw *slidingWindow) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		sw.mu.Lock()
		purged := 0
		for ip, entry := range sw.entries {
			if now.After(entry.windowEnd) {
				delete(sw.entries, ip)
				purged++
			}
		}
		remaining := len(sw.entries)
		sw.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Int("remaining", remaining).Msg("rate limiter map purged")
		}
	}
}

func (sw *slidingWindow) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := sw.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(sw.mensaje))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter caps login attempts to 20 per minute per IP. PINs are
// short, so brute force must stay expensive.
func LoginRateLimiter() gin.HandlerFunc {
	return newSlidingWindow(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newSlidingWindow(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
