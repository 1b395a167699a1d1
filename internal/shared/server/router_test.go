package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
)

func parseRequest(remoteAddr, forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/resume", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	return req
}

func newLimitedRouter(trusted []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config: config.Config{
			RateLimitRPS:   0.001,
			RateLimitBurst: 1,
			TrustedProxies: trusted,
		},
		ResumeHandler: resumes.NewHandler(&resumes.Service{}, 0),
	})
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	r := newLimitedRouter(nil)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, parseRequest("203.0.113.9:5000", "198.51.100.1"))
	if first.Code == http.StatusTooManyRequests {
		t.Fatalf("expected first request through, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, parseRequest("203.0.113.9:5000", "198.51.100.2"))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected spoofed X-Forwarded-For to share the peer's bucket, got %d", second.Code)
	}
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	r := newLimitedRouter([]string{"10.0.0.0/8"})

	for _, client := range []string{"198.51.100.1", "198.51.100.2"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, parseRequest("10.1.2.3:443", client))
		if resp.Code == http.StatusTooManyRequests {
			t.Fatalf("client %s: expected its own bucket behind a trusted proxy", client)
		}
	}
}
