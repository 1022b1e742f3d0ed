// Package testutil provides test components with a start/stop lifecycle
// that also support Reset and Snapshot between cases.
//
// Server is an httptest-backed component that records every request it
// receives:
//
//	srv := testutil.NewServer(testutil.JSON(http.StatusOK, `{"id":5}`))
//	testutil.T(t).Setup(srv)
//	// ... issue requests against srv.URL() ...
//	got := srv.Requests()
package testutil
