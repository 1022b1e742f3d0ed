// Package httpclient is the HTTP transport behind the fetch package.
//
// An Adapter sends one Request per Execute call and hands back the raw
// Response with its body unread. Status classification is left to the
// caller; ClassifyStatus turns a non-2xx code into a *StatusError.
//
//	a, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	})
//
//	resp, err := a.Execute(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "/items?id=5",
//	})
//	defer resp.Close()
//
// Adapter implements provider.RequestResponse, so it composes with the
// provider middlewares for logging, tracing and metrics.
package httpclient
