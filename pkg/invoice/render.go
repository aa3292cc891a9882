package invoice

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/skip2/go-qrcode"

	"school-transport-backend/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns invoices into standalone printable HTML documents.
type Renderer struct {
	engine    *html.Engine
	now       func() time.Time
	verifyURL string
}

type Option func(*Renderer)

// WithClock sets the clock used for the generation date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithVerifyURL embeds a QR code pointing at base?ref=<invoice id> in every
// document that has an id.
func WithVerifyURL(base string) Option {
	return func(r *Renderer) { r.verifyURL = base }
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open invoice templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to load invoice templates: %w", err)
	}

	r := &Renderer{engine: engine, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RenderGenerated renders a server-generated invoice. Printed subtotals and
// the grand total are the supplied figures; see Reconcile for cross-checks.
func (r *Renderer) RenderGenerated(gen *models.GeneratedInvoice) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("no invoice to render")
	}
	doc := GeneratedDocument(gen, r.now())
	if err := r.attachQRCode(&doc); err != nil {
		return "", err
	}
	return r.render(doc)
}

// RenderDraft renders a submitted invoice draft with totals derived from its
// fares.
func (r *Renderer) RenderDraft(d *models.InvoiceDraft) (string, error) {
	if d == nil {
		return "", fmt.Errorf("no invoice draft to render")
	}
	doc := DraftDocument(d, r.now())
	if !d.ID.IsZero() {
		doc.Reference = fmt.Sprintf("%s (%s)", doc.Reference, d.ID.Hex())
		if err := r.attachQRCodeFor(&doc, d.ID.Hex()); err != nil {
			return "", err
		}
	}
	return r.render(doc)
}

func (r *Renderer) render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Render(&buf, "invoice", doc); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) attachQRCode(doc *Document) error {
	if doc.Reference == "" {
		return nil
	}
	return r.attachQRCodeFor(doc, doc.Reference)
}

func (r *Renderer) attachQRCodeFor(doc *Document, ref string) error {
	if r.verifyURL == "" {
		return nil
	}

	target, err := url.Parse(r.verifyURL)
	if err != nil {
		return fmt.Errorf("invalid invoice verification URL: %w", err)
	}
	q := target.Query()
	q.Set("ref", ref)
	target.RawQuery = q.Encode()

	png, err := qrcode.Encode(target.String(), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to encode verification QR code: %w", err)
	}
	doc.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	return nil
}
