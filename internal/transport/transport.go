package transport

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

func defaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
}

// New builds the pooled client shared by the downloaders. proxyURL may be empty,
// http(s):// or socks5://. A zero timeout means no client-side deadline.
func New(proxyURL string, timeout time.Duration) (*http.Client, error) {
	base := defaultTransport()

	if proxyURL != "" {
		if err := setProxy(base, proxyURL); err != nil {
			return nil, err
		}
	}

	return &http.Client{
		Transport: base,
		Timeout:   timeout,
	}, nil
}

func setProxy(t *http.Transport, proxyURL string) error {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("parse proxy url: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		t.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if u.User != nil {
			pass, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: pass}
		}

		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return fmt.Errorf("socks5 proxy: %w", err)
		}

		dc, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return errors.New("socks5: context dialer not supported")
		}

		t.DialContext = dc.DialContext
	default:
		return fmt.Errorf("unsupported proxy scheme: %s", u.Scheme)
	}

	return nil
}
