package gtasks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"intelliassist/pkg/gtasks"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newFakeClient(t *testing.T, handler http.Handler) (*gtasks.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)

	u, _ := url.Parse(ts.URL)
	httpClient := &http.Client{
		Transport: &rewriteTransport{Transport: http.DefaultTransport, Host: u.Host},
	}

	client, err := gtasks.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		ts.Close()
		t.Fatalf("failed to create client: %v", err)
	}
	return client, ts
}

func TestTodaysTasks(t *testing.T) {
	client, ts := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("showCompleted") != "false" {
			t.Error("expected showCompleted=false")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": "t1", "title": "Pay rent", "status": "needsAction", "due": "2026-08-28T00:00:00Z"},
				{"id": "t2", "title": "Plan trip", "status": "needsAction", "due": "2026-09-15T00:00:00Z"},
				{"id": "t3", "title": "Read inbox", "status": "needsAction"}
			]
		}`))
	}))
	defer ts.Close()

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	tasks, err := client.TodaysTasks(context.Background(), "", now, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Due today and undated stay, future due is filtered out
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[1].ID != "t3" {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
	if tasks[0].Due == nil {
		t.Error("expected due date on first task")
	}
}

func TestCreateTask(t *testing.T) {
	client, ts := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/lists/%40default/tasks") && !strings.Contains(r.URL.Path, "/lists/@default/tasks") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "new-1", "title": "Buy groceries", "status": "needsAction"}`))
	}))
	defer ts.Close()

	task, err := client.CreateTask(context.Background(), gtasks.CreateTaskRequest{Title: "Buy groceries"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "new-1" {
		t.Errorf("unexpected task ID: %s", task.ID)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
}

func TestDeleteTask(t *testing.T) {
	var gotMethod string
	client, ts := newFakeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := client.DeleteTask(context.Background(), "", "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
}
