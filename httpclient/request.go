package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// Request describes one outbound call.
type Request struct {
	// Method is the HTTP verb. Empty means GET.
	Method string
	// URL is absolute, or relative to Config.BaseURL.
	URL string
	// Header holds request headers. They replace Config.Headers per key.
	Header http.Header
	// Body is sent as-is when non-nil.
	Body []byte
}

// Response is the raw result of a call. Body is unread and must be closed,
// either directly or through JSON.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       io.ReadCloser
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the whole body into v and closes it. Anything after the first
// JSON value fails the decode. Decode errors are returned unchanged from
// encoding/json; an empty body fails with io.EOF.
func (r *Response) JSON(v any) error {
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return io.EOF
	}
	return json.Unmarshal(data, v)
}

// Close releases the body. It is safe to call more than once.
func (r *Response) Close() error {
	if r == nil || r.Body == nil {
		return nil
	}
	err := r.Body.Close()
	r.Body = http.NoBody
	return err
}

func newResponse(resp *http.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       resp.Body,
	}
}
