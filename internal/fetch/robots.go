package fetch

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsCache stores the parsed robots.txt of every host we touch.
// A nil entry means the file could not be read and everything is allowed.
type robotsCache struct {
	mu        sync.RWMutex
	hosts     map[string]*robotstxt.RobotsData
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func newRobotsCache(client *http.Client, ua string, timeout time.Duration) *robotsCache {
	return &robotsCache{
		hosts:     make(map[string]*robotstxt.RobotsData),
		client:    client,
		userAgent: ua,
		timeout:   timeout,
	}
}

// Allowed reports whether u may be fetched by our user agent.
func (c *robotsCache) Allowed(ctx context.Context, u *url.URL) bool {
	c.mu.RLock()
	robots, ok := c.hosts[u.Host]
	c.mu.RUnlock()

	if !ok {
		robots = c.load(ctx, u.Scheme, u.Host)
		c.mu.Lock()
		c.hosts[u.Host] = robots
		c.mu.Unlock()
	}
	if robots == nil {
		return true
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return robots.FindGroup(c.userAgent).Test(path)
}

func (c *robotsCache) load(ctx context.Context, scheme, host string) *robotstxt.RobotsData {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scheme+"://"+host+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil // treat as no robots file
	}

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return robots
}
