// Package fetch turns a method, a parameter set and an optional credential
// header into one HTTP call, and hands the outcome back as a single-value
// stream.
//
// Read-like verbs (GET, HEAD, DELETE) carry their params in the query
// string; every other verb sends them as a JSON body. Non-2xx responses
// fail the stream with "Fetch error status: <code>".
//
//	a, _ := httpclient.New(httpclient.Config{BaseURL: "https://api.example.com"})
//	f := fetch.New(a)
//
//	it := fetch.Get[Item](ctx, f, "/items", fetch.RequestConfig{
//	    Params:     fetch.NewParams("id", 5),
//	    Credential: &fetch.Credential{HeaderName: "Authorization", HeaderValue: "Bearer t"},
//	})
//	item, err := provider.First(ctx, it)
package fetch
