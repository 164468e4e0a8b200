package tiktok

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	netUrl "net/url"

	easyjson "github.com/mailru/easyjson"
	"github.com/sirupsen/logrus"
)

const (
	BaseURL = "https://api22-normal-c-alisg.tiktokv.com/"
	RootURL = "https://tiktok.com"

	feedEndpoint = "aweme/v1/feed/"

	// Share pages can weigh megabytes; past this the connection is dropped, not reused.
	maxDrain = 64 << 10
)

var (
	videoIDRe = regexp.MustCompile(`/(?:photo|video)/(\d+)`)
	digitsRe  = regexp.MustCompile(`^\d+$`)
)

// Device fields the mobile feed endpoint expects from an android client.
var deviceParams = map[string]string{
	"iid":             "7318518857994389254",
	"device_id":       "7318517321748022790",
	"channel":         "googleplay",
	"app_name":        "musical_ly",
	"version_code":    "300904",
	"device_platform": "android",
	"device_type":     "ASUS_Z01QD",
	"os_version":      "9",
}

// DecodeFunc decodes a raw feed body into v.
type DecodeFunc func(data []byte, v easyjson.Unmarshaler) error

// Client resolves share links and fetches video records from the private mobile API.
// It owns its http.Client; call Close when done. Safe for concurrent use.
type Client struct {
	client    *http.Client
	host      *netUrl.URL
	rootURL   string
	userAgent string
	decode    DecodeFunc
	log       logrus.FieldLogger
}

type Option func(*Client) error

// WithHost overrides the API host. Endpoints are resolved relative to it.
func WithHost(host string) Option {
	return func(c *Client) error {
		u, err := netUrl.Parse(host)
		if err != nil {
			return fmt.Errorf("parse host %q: %w", host, err)
		}

		c.host = u

		return nil
	}
}

// WithRootURL overrides the bare platform url that never identifies a video.
func WithRootURL(root string) Option {
	return func(c *Client) error {
		c.rootURL = root

		return nil
	}
}

func WithDecoder(decode DecodeFunc) Option {
	return func(c *Client) error {
		if decode == nil {
			return fmt.Errorf("%w: nil decoder", ErrInvalidArgument)
		}

		c.decode = decode

		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua

		return nil
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) error {
		c.log = log

		return nil
	}
}

func NewClient(client *http.Client, opts ...Option) (*Client, error) {
	if client == nil {
		client = &http.Client{}
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Client{
		client:  client,
		rootURL: RootURL,
		decode:  easyjson.Unmarshal,
		log:     silent,
	}

	if err := WithHost(BaseURL)(c); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Close releases pooled connections of the owned transport.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}

// ResolveID follows videoURL to its final page and extracts the aweme id from it.
func (c *Client) ResolveID(ctx context.Context, videoURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return "", err
	}

	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer c.closeBody(resp)

	webURL := resp.Request.URL.String()
	if webURL == c.rootURL || (!strings.Contains(webURL, "video") && !strings.Contains(webURL, "photo")) {
		return "", &URLUnavailableError{URL: videoURL}
	}

	match := videoIDRe.FindStringSubmatch(webURL)
	if match == nil {
		return "", &URLUnavailableError{URL: videoURL}
	}

	return match[1], nil
}

// FetchVideo returns the download and cover urls of a video. videoID wins over videoURL;
// videoURL is resolved only when videoID is empty.
func (c *Client) FetchVideo(ctx context.Context, videoURL, videoID string) (Aweme, error) {
	if videoURL == "" && videoID == "" {
		return Aweme{}, ErrInvalidArgument
	}

	if videoID != "" && !digitsRe.MatchString(videoID) {
		return Aweme{}, fmt.Errorf("%w: video id %q is not numeric", ErrInvalidArgument, videoID)
	}

	if videoID == "" {
		id, err := c.ResolveID(ctx, videoURL)
		if err != nil {
			return Aweme{}, err
		}

		videoID = id
	}

	var feed FeedResponse

	if err := c.makeRequest(ctx, http.MethodOptions, feedEndpoint, feedParams(videoID), &feed); err != nil {
		return Aweme{}, err
	}

	for _, item := range feed.AwemeList {
		c.log.WithField("aweme_id", item.AwemeID).Debug("feed entry")

		if item.AwemeID == videoID {
			return item.aweme()
		}
	}

	return Aweme{}, &VideoUnavailableError{ID: videoID}
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, params netUrl.Values, v easyjson.Unmarshaler) error {
	target := c.host.ResolveReference(&netUrl.URL{Path: endpoint, RawQuery: params.Encode()})

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return err
	}

	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer c.closeBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, URL: target.String()}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return c.decode(b, v)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

func (c *Client) closeBody(resp *http.Response) {
	_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)

	if err := resp.Body.Close(); err != nil {
		c.log.Error(err)
	}
}

func feedParams(videoID string) netUrl.Values {
	params := make(netUrl.Values, len(deviceParams)+1)
	for k, v := range deviceParams {
		params.Set(k, v)
	}

	params.Set("aweme_id", videoID)

	return params
}
