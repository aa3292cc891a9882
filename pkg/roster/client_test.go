package roster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStudentsForRoute(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []string
		wantErr bool
	}{
		{"bare array", 200, `[{"id":"1","firstName":"Amy","lastName":"Lee","routeNo":"R1"}]`, []string{"Amy Lee"}, false},
		{"data envelope", 200, `{"data":[{"_id":{"$oid":"65f0"},"name":"Sam Ode"}]}`, []string{"Sam Ode"}, false},
		{"students envelope filters other routes", 200, `{"students":[{"id":"1","firstName":"Amy","routeNo":"R1"},{"id":"2","firstName":"Ben","routeNo":"R2"}]}`, []string{"Amy"}, false},
		{"single object", 200, `{"id":"3","firstName":"Cy","lastName":"Dee"}`, []string{"Cy Dee"}, false},
		{"unknown shape", 200, `{"count":0}`, []string{}, false},
		{"upstream error", 502, `bad gateway`, nil, true},
		{"malformed json", 200, `[{"id":`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/students" || r.URL.Query().Get("routeNo") != "R1" {
					t.Errorf("unexpected request %s", r.URL)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			students, err := NewClient(srv.URL+"/", time.Second).StudentsForRoute(context.Background(), "R1")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(students) != len(tt.want) {
				t.Fatalf("got %d students, want %d", len(students), len(tt.want))
			}
			for i, name := range tt.want {
				if students[i].FullName() != name {
					t.Errorf("student %d: got %q, want %q", i, students[i].FullName(), name)
				}
			}
		})
	}
}

func TestStudentsForRouteNotConfigured(t *testing.T) {
	_, err := NewClient("", time.Second).StudentsForRoute(context.Background(), "R1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("got %v, want ErrNotConfigured", err)
	}
}
