package fetch

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/fetchkit/errors"
	"github.com/kbukum/fetchkit/httpclient"
)

// Fixed headers sent with every request.
const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderAcceptCharset = "Accept-Charset"

	mimeJSON = "application/json"
	charset  = "utf-8"
)

// NewRequest builds the transport request for address and cfg without
// sending it. An empty method falls back to DefaultConfig.
func NewRequest(address string, cfg RequestConfig) (httpclient.Request, error) {
	if cfg.Method == "" {
		cfg = Merge(DefaultConfig(), cfg)
	}
	if err := cfg.Method.Validate(); err != nil {
		return httpclient.Request{}, err
	}

	header := http.Header{}
	header.Set(HeaderAccept, mimeJSON)
	header.Set(HeaderContentType, mimeJSON)
	header.Set(HeaderAcceptCharset, charset)
	if cfg.Credential != nil {
		if err := cfg.Credential.Validate(); err != nil {
			return httpclient.Request{}, err
		}
		cfg.Credential.apply(header)
	}

	req := httpclient.Request{
		Method: string(cfg.Method),
		URL:    address,
		Header: header,
	}

	if cfg.Method.UsesQuery() {
		req.URL = BuildAddress(address, cfg.Params)
		return req, nil
	}

	if cfg.Params != nil {
		body, err := json.Marshal(cfg.Params)
		if err != nil {
			return httpclient.Request{}, errors.Validation("params are not JSON serializable").WithCause(err)
		}
		req.Body = body
	}
	return req, nil
}
