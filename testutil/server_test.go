package testutil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/kbukum/fetchkit/component"
)

func TestServer_RecordsRequests(t *testing.T) {
	srv := NewServer(JSON(http.StatusCreated, `{"ok":true}`))
	if srv.URL() != "" {
		t.Error("URL should be empty before Start")
	}
	T(t).Setup(srv)

	if h := srv.Health(context.Background()); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy, got %s", h.Status)
	}

	resp, err := http.Post(srv.URL()+"/items?x=1", "application/json", strings.NewReader(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated || string(body) != `{"ok":true}` {
		t.Errorf("unexpected response %d %s", resp.StatusCode, body)
	}

	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if reqs[0].Method != http.MethodPost || reqs[0].RequestURI != "/items?x=1" || string(reqs[0].Body) != `{"a":1}` {
		t.Errorf("unexpected recording %+v", reqs[0])
	}
}

func TestServer_ResetSnapshotRestore(t *testing.T) {
	srv := NewServer(JSON(http.StatusOK, `{}`))
	h := T(t)
	h.Setup(srv)

	get := func() {
		resp, err := http.Get(srv.URL())
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
	}

	get()
	snap := h.Snapshot(srv)
	get()
	if len(srv.Requests()) != 2 {
		t.Fatalf("expected 2 requests")
	}

	h.Restore(srv, snap)
	if len(srv.Requests()) != 1 {
		t.Errorf("restore should rewind to 1 request, got %d", len(srv.Requests()))
	}

	h.Reset(srv)
	if len(srv.Requests()) != 0 {
		t.Error("reset should clear requests")
	}

	if err := srv.Restore(context.Background(), "nope"); err == nil {
		t.Error("expected error for a foreign snapshot")
	}
}

func TestServer_DoubleStart(t *testing.T) {
	srv := NewServer(JSON(http.StatusOK, `{}`))
	T(t).Setup(srv)
	if err := srv.Start(context.Background()); err == nil {
		t.Error("second Start should fail")
	}
}
