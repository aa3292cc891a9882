package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"school-transport-backend/config"
	"school-transport-backend/config/middleware"
	"school-transport-backend/models"
	"school-transport-backend/pkg/roster"
)

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return string(raw)
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("got status %d, want %d", resp.StatusCode, want)
	}
}

func marchJobs() []models.Job {
	return []models.Job{
		{
			RouteNo: "R1",
			Year:    2024,
			Month:   3,
			SchoolHolidays: []models.SchoolHoliday{
				{Date: "2024-03-04", SchoolID: "s1", SchoolName: "Hill School"},
			},
		},
		{
			RouteNo: "R2",
			Year:    2024,
			Month:   3,
			Attendance: []models.AttendanceRecord{
				{Date: "2024-03-05", Student: models.StudentName{FirstName: "Amy", LastName: "Lee"}},
			},
		},
	}
}

func TestGetCalendar(t *testing.T) {
	env := setupTestApp(t, nil)
	env.jobs.jobs = marchJobs()

	resp := doRequest(t, env.app, http.MethodGet, "/calendar?month=3&year=2024", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body models.CalendarGridResponse
	decodeBody(t, resp, &body)
	if len(body.Data) != 42 {
		t.Fatalf("got %d cells, want 42", len(body.Data))
	}

	var holiday, today bool
	for _, cell := range body.Data {
		if cell.Date == "2024-03-04" {
			for _, e := range cell.Events {
				holiday = holiday || e.Type == models.EventHoliday
			}
		}
		if cell.IsToday {
			today = cell.Date == "2024-03-15"
		}
	}
	if !holiday {
		t.Error("holiday missing from 2024-03-04")
	}
	if !today {
		t.Error("2024-03-15 should be today")
	}

	resp = doRequest(t, env.app, http.MethodGet, "/calendar?month=3&year=2024&routeNo=R2", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)
	if env.jobs.calls != 1 {
		t.Errorf("repository queried %d times, want 1", env.jobs.calls)
	}
	if got := testutil.ToFloat64(env.metrics.AggregationRuns.WithLabelValues("grid")); got != 2 {
		t.Errorf("grid aggregations = %v, want 2", got)
	}
}

func TestGetCalendarInvalidParams(t *testing.T) {
	env := setupTestApp(t, nil)

	for _, q := range []string{"month=13&year=2024", "month=0", "month=x", "year=abc"} {
		resp := doRequest(t, env.app, http.MethodGet, "/calendar?"+q, nil, nil)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestGetCalendarJobsDefaultsToCurrentMonth(t *testing.T) {
	env := setupTestApp(t, nil)
	env.jobs.jobs = marchJobs()

	resp := doRequest(t, env.app, http.MethodGet, "/calendar/jobs", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body models.CalendarResponse
	decodeBody(t, resp, &body)
	if len(body.Data) != 2 {
		t.Errorf("got %d jobs, want 2", len(body.Data))
	}
}

func TestGetRouteScheduleFiltersTypes(t *testing.T) {
	env := setupTestApp(t, nil)
	env.jobs.jobs = marchJobs()

	resp := doRequest(t, env.app, http.MethodGet, "/calendar/routes?month=3&year=2024&types=holiday", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body models.RouteScheduleResponse
	decodeBody(t, resp, &body)

	if got := body.Data.AvailableRoutes; len(got) != 2 || got[0] != "R1" || got[1] != "R2" {
		t.Errorf("available routes = %v", got)
	}
	if len(body.Data.RouteEvents["R1"]["2024-03-04"]) != 1 {
		t.Error("holiday should survive the filter")
	}
	if n := len(body.Data.RouteEvents["R2"]["2024-03-05"]); n != 0 {
		t.Errorf("absence should be filtered out, got %d events", n)
	}
}

func TestExportRouteSchedule(t *testing.T) {
	env := setupTestApp(t, nil)
	env.jobs.jobs = marchJobs()

	resp := doRequest(t, env.app, http.MethodGet, "/calendar/routes/export?month=3&year=2024", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "route-schedule-2024-03.xlsx") {
		t.Errorf("content disposition %q", cd)
	}
	if body := readBody(t, resp); !strings.HasPrefix(body, "PK") {
		t.Error("export is not a zip container")
	}
}

func TestGetAllRoutes(t *testing.T) {
	env := setupTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodGet, "/routes", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)
	var empty models.RoutesResponse
	decodeBody(t, resp, &empty)
	if empty.Data == nil || len(empty.Data) != 0 {
		t.Errorf("expected an empty list, got %v", empty.Data)
	}
}

func TestGetRouteStudents(t *testing.T) {
	tests := []struct {
		name     string
		students fakeStudents
		want     int
	}{
		{"ok", fakeStudents{students: []models.Student{{ID: "1", FirstName: "Amy", RouteNo: "R1"}}}, fiber.StatusOK},
		{"not configured", fakeStudents{err: roster.ErrNotConfigured}, fiber.StatusServiceUnavailable},
		{"upstream failure", fakeStudents{err: errors.New("connection refused")}, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestApp(t, tt.students)
			resp := doRequest(t, env.app, http.MethodGet, "/routes/R1/students", nil, nil)
			assertStatus(t, resp, tt.want)
		})
	}
}

func generatedFixture() *models.GeneratedInvoice {
	return &models.GeneratedInvoice{
		DriverID: "D1",
		Driver:   models.DriverIdentity{Name: "John Smith"},
		RegularAssignments: models.RegularAssignments{
			Weeks: []models.RegularWeek{{
				WeekNumber: 1,
				Days: []models.RegularDay{
					{Date: "2024-01-01", Route1: &models.RouteFare{Name: "R1", Fare: 20}},
					{Date: "2024-01-02", Route1: &models.RouteFare{Name: "R1", Fare: 30}},
				},
			}},
			TotalPay: 50,
		},
		TemporaryAssignments: models.TemporaryAssignments{
			Days: []models.TemporaryDay{{
				Date:   "2024-01-03",
				Routes: []models.TemporaryRoute{{Name: "R7", Fare: 15}},
			}},
			TotalPay: 15,
		},
		SpecialServices:   models.SpecialServiceCharges{TotalPay: 0},
		TotalPay:          65,
		OriginalDateRange: models.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-05"},
	}
}

const invoicePath = "/drivers/D1/invoice?startDate=2024-01-01&endDate=2024-01-05"

func TestGetDriverInvoice(t *testing.T) {
	env := setupTestApp(t, nil)
	env.invoices.generated["D1|2024-01-01|2024-01-05"] = generatedFixture()

	resp := doRequest(t, env.app, http.MethodGet, invoicePath, nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body struct {
		Weeks          []json.RawMessage `json:"weeks"`
		HasSecondRoute bool              `json:"hasSecondRoute"`
		Reconciliation struct {
			Consistent bool `json:"consistent"`
		} `json:"reconciliation"`
	}
	decodeBody(t, resp, &body)
	if len(body.Weeks) != 1 || body.HasSecondRoute || !body.Reconciliation.Consistent {
		t.Errorf("unexpected response: %+v", body)
	}
	if got := testutil.ToFloat64(env.metrics.ReconcileMismatches); got != 0 {
		t.Errorf("mismatches = %v, want 0", got)
	}
}

func TestGetDriverInvoiceReportsMismatch(t *testing.T) {
	env := setupTestApp(t, nil)
	gen := generatedFixture()
	gen.TotalPay = 70
	env.invoices.generated["D1|2024-01-01|2024-01-05"] = gen

	resp := doRequest(t, env.app, http.MethodGet, invoicePath, nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body struct {
		Reconciliation struct {
			Consistent bool `json:"consistent"`
		} `json:"reconciliation"`
	}
	decodeBody(t, resp, &body)
	if body.Reconciliation.Consistent {
		t.Error("expected an inconsistent reconciliation")
	}
	if got := testutil.ToFloat64(env.metrics.ReconcileMismatches); got != 1 {
		t.Errorf("mismatches = %v, want 1", got)
	}
}

func TestGetDriverInvoiceErrors(t *testing.T) {
	env := setupTestApp(t, nil)

	tests := []struct {
		path string
		want int
	}{
		{"/drivers/D1/invoice", fiber.StatusBadRequest},
		{"/drivers/D1/invoice?startDate=2024-01-05&endDate=2024-01-01", fiber.StatusBadRequest},
		{"/drivers/D1/invoice?startDate=soon&endDate=2024-01-01", fiber.StatusBadRequest},
		{invoicePath, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		resp := doRequest(t, env.app, http.MethodGet, tt.path, nil, nil)
		if resp.StatusCode != tt.want {
			t.Errorf("%s: got %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestGetDriverInvoiceDocument(t *testing.T) {
	env := setupTestApp(t, nil)
	env.invoices.generated["D1|2024-01-01|2024-01-05"] = generatedFixture()
	docPath := "/drivers/D1/invoice/document?startDate=2024-01-01&endDate=2024-01-05"

	resp := doRequest(t, env.app, http.MethodGet, docPath, nil, map[string]string{"Accept": "text/html"})
	assertStatus(t, resp, fiber.StatusOK)
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type %q", ct)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Total Pay: £65.00") {
		t.Error("document is missing the total")
	}

	resp = doRequest(t, env.app, http.MethodGet, docPath, nil, map[string]string{"Accept": "application/json"})
	assertStatus(t, resp, fiber.StatusNotAcceptable)
	if body := readBody(t, resp); !strings.Contains(body, "allow pop-ups") {
		t.Errorf("blocked response should explain how to recover: %s", body)
	}
	if got := testutil.ToFloat64(env.metrics.DocumentsRendered.WithLabelValues("generated", "blocked")); got != 1 {
		t.Errorf("blocked documents = %v, want 1", got)
	}
}

func draftBody() map[string]any {
	return map[string]any{
		"userType":     "DRIVER",
		"driverNumber": "D-12",
		"name":         "John Smith",
		"weeks": []map[string]any{{
			"weekNumber": 1,
			"days": []map[string]any{{
				"day":    "Monday",
				"date":   "2024-01-01",
				"routes": []map[string]any{{"name": "R1", "fare": 10}, {"name": "R2", "fare": "5"}},
			}},
		}},
		"extraJobs":  []map[string]any{{"date": "2024-01-02", "description": "Trip", "fare": 2.5}},
		"totalPay":   999,
		"periodFrom": "2024-01-01",
		"periodTo":   "2024-01-07",
		"signature":  "J. Smith",
	}
}

func TestSubmitInvoice(t *testing.T) {
	env := setupTestApp(t, nil)

	resp := doRequest(t, env.app, http.MethodPost, "/invoices", draftBody(), nil)
	assertStatus(t, resp, fiber.StatusCreated)
	if resp.Header.Get(middleware.IdempotencyHeader) == "" {
		t.Error("response should carry the idempotency key")
	}

	var body models.InvoiceDraftResponse
	decodeBody(t, resp, &body)
	if body.Data.TotalPay != 17.5 {
		t.Errorf("total = %v, want 17.5", body.Data.TotalPay)
	}
	if len(env.invoices.drafts) != 1 {
		t.Errorf("stored %d drafts, want 1", len(env.invoices.drafts))
	}
}

func TestSubmitInvoiceNormalizesPeriod(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantFrom string
		wantTo   string
	}{
		{"same day with a time part", "2024-01-01T09:00:00Z", "2024-01-01", "2024-01-01", "2024-01-01"},
		{"slash separated start", "2024/01/01", "2024-01-07", "2024-01-01", "2024-01-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestApp(t, nil)
			body := draftBody()
			body["periodFrom"] = tt.from
			body["periodTo"] = tt.to

			resp := doRequest(t, env.app, http.MethodPost, "/invoices", body, nil)
			assertStatus(t, resp, fiber.StatusCreated)

			var got models.InvoiceDraftResponse
			decodeBody(t, resp, &got)
			if got.Data.PeriodFrom != tt.wantFrom || got.Data.PeriodTo != tt.wantTo {
				t.Errorf("stored period %s..%s, want %s..%s", got.Data.PeriodFrom, got.Data.PeriodTo, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestSubmitInvoiceRejected(t *testing.T) {
	env := setupTestApp(t, nil)

	missingName := draftBody()
	delete(missingName, "name")
	reversed := draftBody()
	reversed["periodFrom"] = "2024-02-01"
	paWithoutNumber := draftBody()
	paWithoutNumber["userType"] = "PA"
	reversedMixedSeparators := draftBody()
	reversedMixedSeparators["periodFrom"] = "2024-03-01"
	reversedMixedSeparators["periodTo"] = "2024/02/01"

	tests := []struct {
		name    string
		body    map[string]any
		headers map[string]string
	}{
		{"missing name", missingName, nil},
		{"reversed period", reversed, nil},
		{"pa without number", paWithoutNumber, nil},
		{"reversed period with mixed separators", reversedMixedSeparators, nil},
		{"bad idempotency key", draftBody(), map[string]string{middleware.IdempotencyHeader: "not-a-uuid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, env.app, http.MethodPost, "/invoices", tt.body, tt.headers)
			assertStatus(t, resp, fiber.StatusBadRequest)
		})
	}
	if len(env.invoices.drafts) != 0 {
		t.Error("rejected submissions must not be stored")
	}
}

func TestSubmitInvoiceInFlight(t *testing.T) {
	env := setupTestApp(t, nil)
	entered := make(chan struct{})
	release := make(chan struct{})
	env.invoices.onCreate = func() {
		entered <- struct{}{}
		<-release
	}

	headers := map[string]string{middleware.IdempotencyHeader: "8c0f7a8e-3b1d-4c55-9a57-0e7d1f2b6a11"}
	payload := mustJSON(t, draftBody())
	first := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(middleware.IdempotencyHeader, headers[middleware.IdempotencyHeader])
		resp, err := env.app.Test(req, -1)
		if err != nil {
			first <- 0
			return
		}
		first <- resp.StatusCode
	}()

	<-entered
	resp := doRequest(t, env.app, http.MethodPost, "/invoices", draftBody(), headers)
	assertStatus(t, resp, fiber.StatusConflict)
	close(release)

	if got := <-first; got != fiber.StatusCreated {
		t.Errorf("first submission got %d, want 201", got)
	}
	if got := testutil.ToFloat64(env.metrics.InvoiceSubmissions.WithLabelValues("duplicate")); got != 1 {
		t.Errorf("duplicate submissions = %v, want 1", got)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func storedDraft(t *testing.T, env *testEnv) *models.InvoiceDraft {
	t.Helper()
	d := &models.InvoiceDraft{
		UserType:     models.UserTypeDriver,
		DriverNumber: "D-12",
		Name:         "John Smith",
		Weeks: []models.Week{{
			WeekNumber: 1,
			Days: []models.Day{{
				Day:    "Monday",
				Date:   "2024-01-01",
				Routes: []models.RouteFare{{Name: "R1", Fare: 10}, {Name: "R2", Fare: "abc"}},
			}},
		}},
		ExtraJobs:  []models.ExtraJob{{Date: "2024-01-02", Description: "School trip", Fare: 5}},
		TotalPay:   15,
		PeriodFrom: "2024-01-01",
		PeriodTo:   "2024-01-07",
		Signature:  "J. Smith",
	}
	if err := env.invoices.CreateDraft(context.Background(), d); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEditInvoiceFares(t *testing.T) {
	env := setupTestApp(t, nil)
	d := storedDraft(t, env)
	path := "/invoices/" + d.ID.Hex() + "/fares"

	edits := map[string]any{"edits": []map[string]any{{"op": "setRouteFare", "week": 0, "day": 0, "route": 0, "fare": 12}}}
	resp := doRequest(t, env.app, http.MethodPatch, path, edits, nil)
	assertStatus(t, resp, fiber.StatusOK)

	var body models.InvoiceDraftResponse
	decodeBody(t, resp, &body)
	if body.Data.TotalPay != 17 {
		t.Errorf("total = %v, want 17", body.Data.TotalPay)
	}
	if env.invoices.drafts[d.ID].TotalPay != 17 {
		t.Error("edited total was not stored")
	}
}

func TestEditInvoiceFaresRejected(t *testing.T) {
	env := setupTestApp(t, nil)
	d := storedDraft(t, env)
	path := "/invoices/" + d.ID.Hex() + "/fares"

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"empty batch", path, map[string]any{"edits": []any{}}, fiber.StatusBadRequest},
		{"unknown op", path, map[string]any{"edits": []map[string]any{{"op": "rename"}}}, fiber.StatusBadRequest},
		{"out of range", path, map[string]any{"edits": []map[string]any{
			{"op": "setRouteFare", "fare": 99},
			{"op": "removeRoute", "week": 4},
		}}, fiber.StatusUnprocessableEntity},
		{"bad id", "/invoices/xyz/fares", map[string]any{"edits": []map[string]any{{"op": "removeExtraJob"}}}, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, env.app, http.MethodPatch, tt.path, tt.body, nil)
			assertStatus(t, resp, tt.want)
		})
	}

	stored := env.invoices.drafts[d.ID]
	if stored.Weeks[0].Days[0].Routes[0].Fare != 10 || stored.TotalPay != 15 {
		t.Error("rejected edits must leave the draft untouched")
	}
}

func TestGetAndUpdateInvoice(t *testing.T) {
	env := setupTestApp(t, nil)
	d := storedDraft(t, env)

	resp := doRequest(t, env.app, http.MethodGet, "/invoices/"+d.ID.Hex(), nil, nil)
	assertStatus(t, resp, fiber.StatusOK)

	resp = doRequest(t, env.app, http.MethodPut, "/invoices/"+d.ID.Hex(), draftBody(), nil)
	assertStatus(t, resp, fiber.StatusOK)
	if got := env.invoices.drafts[d.ID].TotalPay; got != 17.5 {
		t.Errorf("updated total = %v, want 17.5", got)
	}

	resp = doRequest(t, env.app, http.MethodPut, "/invoices/65f000000000000000000000", draftBody(), nil)
	assertStatus(t, resp, fiber.StatusNotFound)

	resp = doRequest(t, env.app, http.MethodGet, "/invoices/65f000000000000000000000", nil, nil)
	assertStatus(t, resp, fiber.StatusNotFound)
}

func TestGetInvoiceDocument(t *testing.T) {
	env := setupTestApp(t, nil)
	d := storedDraft(t, env)

	resp := doRequest(t, env.app, http.MethodGet, "/invoices/"+d.ID.Hex()+"/document", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)
	body := readBody(t, resp)
	for _, want := range []string{"Driver No. D-12", "Extra Jobs Subtotal: £5.00", "Total Pay: £15.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("document is missing %q", want)
		}
	}
}

func TestJobViewSettings(t *testing.T) {
	env := setupTestApp(t, nil)

	var view models.JobViewResponse
	resp := doRequest(t, env.app, http.MethodGet, "/settings/job-view", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &view)
	if view.Source != config.JobViewSourceDefault || len(view.Columns) != len(config.DefaultJobViewColumns) {
		t.Errorf("unexpected default view: %+v", view)
	}

	resp = doRequest(t, env.app, http.MethodPut, "/settings/job-view", map[string]any{"columns": []string{"school", "ROUTENO", "school"}}, nil)
	assertStatus(t, resp, fiber.StatusOK)

	resp = doRequest(t, env.app, http.MethodGet, "/settings/job-view", nil, nil)
	decodeBody(t, resp, &view)
	if view.Source != config.JobViewSourceServer || strings.Join(view.Columns, ",") != "school,routeNo" {
		t.Errorf("unexpected stored view: %+v", view)
	}

	resp = doRequest(t, env.app, http.MethodPut, "/settings/job-view", map[string]any{"columns": []string{"routeNo", "colour"}}, nil)
	assertStatus(t, resp, fiber.StatusBadRequest)
}

func TestJobViewSettingsOutage(t *testing.T) {
	env := setupTestApp(t, nil)
	env.settings.err = errors.New("mongo down")

	var view models.JobViewResponse
	resp := doRequest(t, env.app, http.MethodGet, "/settings/job-view", nil, nil)
	assertStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &view)
	if view.Source != config.JobViewSourceDefault {
		t.Errorf("outage should fall back to defaults, got %+v", view)
	}
}
