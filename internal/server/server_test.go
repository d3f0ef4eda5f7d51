package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nettopo/topograph/pkg/source"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(source.Example(), log.New(io.Discard)).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("response should carry an X-Request-Id")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("X-Request-Id", "my-id")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != "my-id" {
		t.Errorf("X-Request-Id = %q, want my-id", got)
	}
}

func TestDevices(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/api/v1/devices")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	devices, ok := body["devices"].([]any)
	if !ok || len(devices) != 13 {
		t.Errorf("devices = %v, want 13 entries", body["devices"])
	}
}

func TestDevicesNotEnumerable(t *testing.T) {
	// A bare Source without Devices gets a 501.
	srv := httptest.NewServer(New(bareSource{}, log.New(io.Discard)).Router())
	defer srv.Close()

	resp, _ := get(t, srv.URL+"/api/v1/devices")
	if resp.StatusCode != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", resp.StatusCode)
	}
}

type bareSource struct{}

func (bareSource) Neighbors(context.Context, string) ([]string, error) { return nil, nil }

func TestRoot(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/api/v1/devices/sweden-a7.example.com/root")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["root"] != "sweden-pe1.example.com" {
		t.Errorf("root = %v", body["root"])
	}
	if body["device"] != "sweden-a7.example.com" {
		t.Errorf("device = %v", body["device"])
	}
}

func TestRootUnknownDevice(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/api/v1/devices/ghost/root")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body["error"] == "" {
		t.Error("error body should explain the failure")
	}
}

func TestTree(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/api/v1/devices/denmark-a1.example.com/tree")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["root"] != "sweden-pe1.example.com" {
		t.Errorf("root = %v", body["root"])
	}

	tree, ok := body["tree"].(map[string]any)
	if !ok {
		t.Fatalf("tree = %v", body["tree"])
	}
	if tree["device"] != "sweden-pe1.example.com" {
		t.Errorf("tree root = %v", tree["device"])
	}
	if tree["backbone"] != true {
		t.Error("tree root should be marked backbone")
	}
	children, ok := tree["children"].([]any)
	if !ok || len(children) != 5 {
		t.Errorf("tree root children = %v, want 5", tree["children"])
	}
}

func TestTreeNoBackboneReachable(t *testing.T) {
	src := source.NewStatic(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})
	srv := httptest.NewServer(New(src, log.New(io.Discard)).Router())
	defer srv.Close()

	resp, _ := get(t, srv.URL+"/api/v1/devices/a/tree")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}
