package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"school-transport-backend/config/middleware"
	"school-transport-backend/models"
	"school-transport-backend/pkg/invoice"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/repository"
)

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  []models.Job
	calls int
}

func (f *fakeJobRepo) FindByMonth(_ context.Context, year, month int) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	var out []models.Job
	for _, j := range f.jobs {
		if j.Year == year && j.Month == month {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) InsertMany(_ context.Context, jobs []models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, jobs...)
	return nil
}

func (f *fakeJobRepo) CountDocuments(context.Context, bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.jobs)), nil
}

type fakeRouteRepo struct {
	routes []models.Route
}

func (f *fakeRouteRepo) CreateRoute(_ context.Context, r *models.Route) (*mongo.InsertOneResult, error) {
	r.ID = primitive.NewObjectID()
	f.routes = append(f.routes, *r)
	return &mongo.InsertOneResult{InsertedID: r.ID}, nil
}

func (f *fakeRouteRepo) GetAllRoutes(context.Context) ([]models.Route, error) {
	return f.routes, nil
}

func (f *fakeRouteRepo) FindRouteByNumber(_ context.Context, routeNo string) (*models.Route, error) {
	for _, r := range f.routes {
		if r.RouteNo == routeNo {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) CountDocuments(context.Context, bson.M) (int64, error) {
	return int64(len(f.routes)), nil
}

type fakeStudents struct {
	students []models.Student
	err      error
}

func (f fakeStudents) StudentsForRoute(context.Context, string) ([]models.Student, error) {
	return f.students, f.err
}

type fakeInvoiceRepo struct {
	mu        sync.Mutex
	drafts    map[primitive.ObjectID]models.InvoiceDraft
	generated map[string]*models.GeneratedInvoice

	// onCreate runs inside CreateDraft before the draft is stored.
	onCreate func()
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		drafts:    make(map[primitive.ObjectID]models.InvoiceDraft),
		generated: make(map[string]*models.GeneratedInvoice),
	}
}

func (f *fakeInvoiceRepo) CreateDraft(_ context.Context, d *models.InvoiceDraft) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = primitive.NewObjectID()
	d.Status = repository.DraftStatusSubmitted
	f.drafts[d.ID] = *d
	return nil
}

func (f *fakeInvoiceRepo) FindDraftByID(_ context.Context, id primitive.ObjectID) (*models.InvoiceDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeInvoiceRepo) UpdateDraft(_ context.Context, d *models.InvoiceDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drafts[d.ID]; !ok {
		return repository.ErrNotFound
	}
	f.drafts[d.ID] = *d
	return nil
}

func (f *fakeInvoiceRepo) FindGenerated(_ context.Context, driverID, start, end string) (*models.GeneratedInvoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generated[driverID+"|"+start+"|"+end], nil
}

type fakeSettingsRepo struct {
	stored *models.JobViewSettings
	err    error
}

func (f *fakeSettingsRepo) GetJobView(context.Context) (*models.JobViewSettings, error) {
	return f.stored, f.err
}

func (f *fakeSettingsRepo) SaveJobView(_ context.Context, columns []string) (*models.JobViewSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stored = &models.JobViewSettings{Key: models.JobViewSettingsKey, Columns: columns}
	return f.stored, nil
}

type testEnv struct {
	app      *fiber.App
	jobs     *fakeJobRepo
	routes   *fakeRouteRepo
	invoices *fakeInvoiceRepo
	settings *fakeSettingsRepo
	metrics  *metrics.Metrics
}

// testNow pins today to 2024-03-15.
var testNow = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

func setupTestApp(t *testing.T, students StudentSource) *testEnv {
	t.Helper()

	env := &testEnv{
		app:      fiber.New(),
		jobs:     &fakeJobRepo{},
		routes:   &fakeRouteRepo{},
		invoices: newFakeInvoiceRepo(),
		settings: &fakeSettingsRepo{},
		metrics:  metrics.New(),
	}

	renderer, err := invoice.NewRenderer(invoice.WithClock(testNow))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := querycache.New(time.Minute)

	calendar := NewCalendarHandler(env.jobs, cache, env.metrics, testNow, time.UTC)
	routes := NewRouteHandler(env.routes, students, cache, log)
	invoices := NewInvoiceHandler(env.invoices, renderer, cache, env.metrics, log)
	settings := NewSettingsHandler(env.settings, nil, log)

	env.app.Get("/calendar", calendar.GetCalendar)
	env.app.Get("/calendar/jobs", calendar.GetCalendarJobs)
	env.app.Get("/calendar/routes", calendar.GetRouteSchedule)
	env.app.Get("/calendar/routes/export", calendar.ExportRouteSchedule)
	env.app.Get("/routes", routes.GetAllRoutes)
	env.app.Get("/routes/:routeNo/students", routes.GetRouteStudents)
	env.app.Get("/drivers/:id/invoice", invoices.GetDriverInvoice)
	env.app.Get("/drivers/:id/invoice/document", invoices.GetDriverInvoiceDocument)
	env.app.Post("/invoices", middleware.IdempotencyKey(), invoices.SubmitInvoice)
	env.app.Get("/invoices/:id", invoices.GetInvoice)
	env.app.Put("/invoices/:id", invoices.UpdateInvoice)
	env.app.Patch("/invoices/:id/fares", invoices.EditInvoiceFares)
	env.app.Get("/invoices/:id/document", invoices.GetInvoiceDocument)
	env.app.Get("/settings/job-view", settings.GetJobView)
	env.app.Put("/settings/job-view", settings.UpdateJobView)

	return env
}
