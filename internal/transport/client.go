// Package transport is the client's one request/response channel to the
// game server. Both polling and intent dispatch go through the single
// /action endpoint and both yield a full snapshot; there is no streaming
// and no delivery ordering between concurrent requests.
package transport

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"river-client/internal/model"
)

// StatusError is a completed exchange with a non-2xx status. The body is
// not a snapshot in that case and is retained only for logging.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status code from %s: %d", e.URL, e.StatusCode)
}

type Client struct {
	Host  string
	Port  int
	Resty *resty.Client
}

func NewClient(host string, port int) *Client {
	restyClient := resty.New()
	restyClient.SetRetryCount(3)
	restyClient.SetRetryWaitTime(500 * time.Millisecond)
	restyClient.SetTimeout(5 * time.Second)
	return &Client{Host: host, Port: port, Resty: restyClient}
}

func (client *Client) url(path string) string {
	return fmt.Sprintf("http://%s:%d/%s", client.Host, client.Port, path)
}

func (client *Client) postAction(body *envelope) (*model.GameSnapshot, error) {
	url := client.url("action")
	requestID := uuid.New().String()
	result := &model.GameSnapshot{}
	resp, err := client.Resty.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", requestID).
		SetBody(body).
		SetResult(result).
		Post(url)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to POST to %s (request %s)", url, requestID)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		log.Debugf("request %s to %s failed with status %d: %s", requestID, url, resp.StatusCode(), resp.String())
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return result, nil
}

// FetchSnapshot polls the server for the full snapshot as seen by me;
// me is "" when the local user has not joined.
func (client *Client) FetchSnapshot(me string) (*model.GameSnapshot, error) {
	return client.postAction(pollEnvelope(me))
}

// SendIntent dispatches one user action and returns the resulting
// snapshot.
func (client *Client) SendIntent(me string, intent Intent) (*model.GameSnapshot, error) {
	body, err := buildEnvelope(me, intent)
	if err != nil {
		return nil, err
	}
	return client.postAction(body)
}
