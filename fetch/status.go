package fetch

import (
	"context"

	"github.com/kbukum/fetchkit/httpclient"
)

// statusCheck fails non-2xx responses with *httpclient.StatusError and
// closes their bodies unread.
type statusCheck struct {
	inner Transport
}

func (s statusCheck) Name() string                         { return s.inner.Name() }
func (s statusCheck) IsAvailable(ctx context.Context) bool { return s.inner.IsAvailable(ctx) }

func (s statusCheck) Execute(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	resp, err := s.inner.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := httpclient.ClassifyStatus(resp.StatusCode); err != nil {
		_ = resp.Close()
		return nil, err
	}
	return resp, nil
}
