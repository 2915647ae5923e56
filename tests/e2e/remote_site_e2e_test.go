//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteSite_HomePages(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("index shows welcome message", func(t *testing.T) {
		status, body := mustGet(t, client, baseURL+"/")
		if status != http.StatusOK {
			t.Fatalf("index status=%d body=%s", status, string(body))
		}
		if !strings.Contains(string(body), "Welcome to ASP.NET MVC!") {
			t.Fatalf("index missing welcome message: %s", string(body))
		}
	})

	t.Run("about renders", func(t *testing.T) {
		status, body := mustGet(t, client, baseURL+"/Home/About")
		if status != http.StatusOK {
			t.Fatalf("about status=%d body=%s", status, string(body))
		}
		if len(body) == 0 {
			t.Fatalf("about body empty")
		}
	})

	t.Run("unknown action is not found", func(t *testing.T) {
		status, body := mustGet(t, client, baseURL+"/Home/Missing")
		if status != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", status, string(body))
		}
	})

	t.Run("kpi counts views", func(t *testing.T) {
		status, body := mustGet(t, client, baseURL+"/ops/kpi")
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		var kpi map[string]any
		if err := json.Unmarshal(body, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v body=%s", err, string(body))
		}
		views := asMap(kpi["views_by_action"])
		if n, _ := views["Home/Index"].(float64); n < 1 {
			t.Fatalf("expected Home/Index views in kpi, got %s", string(body))
		}
	})
}

func mustGet(t *testing.T, client *http.Client, url string) (int, []byte) {
	t.Helper()
	status, respBody, err := doGet(client, url)
	if err != nil {
		t.Fatalf("GET %s request failed: %v", url, err)
	}
	return status, respBody
}

func doGet(client *http.Client, url string) (int, []byte, error) {
	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
