package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

// FetchError is returned when the upstream page answers with a non-2xx status.
type FetchError struct {
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to retrieve the webpage: statusCode %d; url %s;", e.StatusCode, e.URL)
}

func (c *ClientController) Fetch(ctx context.Context, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "get %s", u)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.
			WithField("method", "Fetch").
			WithField("url", u.String()).
			Debugf("upstream status %d", resp.StatusCode)

		return "", &FetchError{StatusCode: resp.StatusCode, URL: u.String()}
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", u)
	}

	return string(out), nil
}
