package bfetch

import (
	"context"
	"net/http"

	"github.com/advdv/bdrain"
	"github.com/carlmjohnson/requests"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// NewHTTPClient creates the *http.Client used for fetching. The timeout covers the
// full exchange, so a stalled body drain terminates with the request instead of
// hanging forever.
func NewHTTPClient(env Environment) *http.Client {
	return &http.Client{Timeout: env.Timeout}
}

// Client fetches URLs and drains their response bodies through a bdrain accumulator.
type Client struct {
	accu      *bdrain.Accumulator
	chunkSize int
	base      *requests.Builder
	logs      *zap.Logger
}

// New inits a client from the environment, the http client and a logger.
func New(env Environment, httpc *http.Client, logs *zap.Logger) *Client {
	return &Client{
		accu:      bdrain.NewWithBufferSize(env.BufferSize),
		chunkSize: env.BufferSize,
		base:      requests.New().Client(httpc).UserAgent(env.UserAgent),
		logs:      logs,
	}
}

// FetchBytes issues a GET against url and returns the fully drained response body.
// Non-2xx responses fail before the body is drained.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.base.Clone().
		BaseURL(url).
		Handle(func(resp *http.Response) error {
			drained, err := c.accu.BytesFromChunks(ctx, bdrain.ReaderSource(resp.Body, c.chunkSize))
			if err != nil {
				return err
			}

			body = drained
			return nil
		}).
		Fetch(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}

	c.logs.Debug("fetched url", zap.String("url", url), zap.Int("num_bytes", len(body)))

	return body, nil
}

// FetchString is [Client.FetchBytes] with a whole-buffer UTF-8 validation of the
// result. The validation runs on the assembled body, so chunk boundaries inside
// multi-byte code points are fine; a body that is not text fails with a
// [bdrain.KindEncoding] error.
func (c *Client) FetchString(ctx context.Context, url string) (string, error) {
	body, err := c.FetchBytes(ctx, url)
	if err != nil {
		return "", err
	}

	content, ok := bdrain.BytesToString(body)
	if !ok {
		return "", bdrain.NewError(bdrain.KindEncoding, errors.Newf("body of %s is not valid utf-8", url))
	}

	return content, nil
}
