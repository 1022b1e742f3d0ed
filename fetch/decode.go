package fetch

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/kbukum/fetchkit/httpclient"
	"github.com/kbukum/fetchkit/provider"
)

// AsDecodedStream is AsStream with the response body decoded as JSON into T.
// Decode failures are returned unchanged from encoding/json; an empty body
// fails with io.EOF.
func AsDecodedStream[T any](ctx context.Context, f *Fetcher, address string, cfg RequestConfig) provider.Iterator[T] {
	d := provider.Then(f.Issue(ctx, address, cfg), func(resp *httpclient.Response) (T, error) {
		var out T
		if err := resp.JSON(&out); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	})
	return provider.FromDeferred(d)
}

// IsDecode reports whether err came from decoding a response body.
func IsDecode(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &syntaxErr) ||
		stderrors.As(err, &typeErr) ||
		stderrors.Is(err, io.ErrUnexpectedEOF)
}
