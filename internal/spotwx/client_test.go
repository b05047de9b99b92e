package spotwx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagreene/spotwx/internal/models"
)

func TestClient_Fetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(forecastPage))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	req := models.Request{
		CSVPath:  "out.csv",
		Model:    "gfs",
		Lat:      51.0,
		Lon:      -114.0,
		Timezone: "America/Edmonton",
		Display:  "table",
	}

	rows, err := client.Fetch(context.Background(), req)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	wantQuery := "model=gfs_pgrb2&lat=51.0&lon=-114.0&tz=America/Edmonton&display=table"
	if gotQuery != wantQuery {
		t.Errorf("query = %q, want %q", gotQuery, wantQuery)
	}
}

func TestClient_FetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Fetch(context.Background(), validRequest())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want %d", statusErr.Code, http.StatusNotFound)
	}
}

func TestClient_FetchDataNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(emptyPage))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Fetch(context.Background(), validRequest())
	if !errors.Is(err, ErrDataNotFound) {
		t.Fatalf("got %v, want ErrDataNotFound", err)
	}
}

func TestClient_FetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 0)
	if _, err := client.Fetch(ctx, validRequest()); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", 0)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
}
