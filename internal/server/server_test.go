package server

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jefffranzen/capviz/pkg/chart"
	"github.com/jefffranzen/capviz/pkg/pipeline"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := New(Config{
		Specs: []chart.Spec{
			{
				ID: "roi_summary", Kind: chart.KindRankedBar, Title: "ROI Summary",
				Points: []chart.Point{{Label: "Hurricane", Value: 37.3}, {Label: "Flooding", Value: 25.5}},
			},
			{
				ID: "cost_share", Kind: chart.KindDonut, Title: "Cost Share",
				Points: []chart.Point{{Label: "Volunteers", Value: 670000}, {Label: "Logistics", Value: 380000}},
			},
		},
		DashboardTitle: "Test Dashboard",
		Scale:          1,
	})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealthz(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestDashboardRoute(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %s", ct)
	}
	for _, id := range []string{"roi_summary", "cost_share"} {
		if !strings.Contains(string(body), id) {
			t.Errorf("dashboard missing chart %q", id)
		}
	}
}

func TestChartHTMLRoute(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/charts/roi_summary")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), "ROI Summary") {
		t.Error("chart page missing title")
	}
}

func TestChartPNGRoute(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/charts/cost_share.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s", ct)
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != chart.MinWidth {
		t.Errorf("png width = %d, want %d at scale 1", img.Bounds().Dx(), chart.MinWidth)
	}
}

func TestUnknownChart(t *testing.T) {
	ts := testServer(t)
	for _, path := range []string{"/charts/nope", "/charts/nope.png"} {
		resp, _ := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestNewRejectsEmptyAndDuplicate(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for empty chart set")
	}

	spec := chart.Spec{
		ID: "a", Kind: chart.KindDonut, Title: "A",
		Points: []chart.Point{{Label: "x", Value: 1}},
	}
	if _, err := New(Config{Specs: []chart.Spec{spec, spec}}); err == nil {
		t.Error("expected error for duplicate chart ids")
	}
}

func TestPreviewMatchesPipelineArtifact(t *testing.T) {
	spec := chart.Spec{
		ID: "match", Kind: chart.KindDonut, Title: "Match",
		Points: []chart.Point{{Label: "x", Value: 3}, {Label: "y", Value: 1}},
	}
	srv, err := New(Config{Specs: []chart.Spec{spec}, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	_, served := get(t, ts.URL+"/charts/match")

	runner := pipeline.NewRunner(nil, nil, nil)
	direct, _, err := runner.RenderArtifact(context.Background(), spec, pipeline.FormatHTML, pipeline.Options{Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(served, direct) {
		t.Error("preview output differs from pipeline artifact")
	}
}
