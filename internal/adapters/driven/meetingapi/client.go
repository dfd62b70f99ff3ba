package meetingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.MeetingAPI = (*Client)(nil)

// HeaderRequestID carries a per-request identifier for backend log correlation.
const HeaderRequestID = "X-Request-ID"

// maxJSONBody bounds a decoded JSON response.
const maxJSONBody = 32 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. http://127.0.0.1:8000.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64

	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// ConfigFromSettings maps client settings onto a Config.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Token:             s.Token,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Client talks to the meeting-notes backend.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	rateLimiter *RateLimiter
}

// New creates a backend client.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", domain.ErrInvalidInput, cfg.BaseURL)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   transport,
		}
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ProcessMeeting uploads an audio file and returns the processed meeting.
func (c *Client) ProcessMeeting(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error) {
	const op = "process meeting"

	var body processResponse
	if err := c.upload(ctx, op, pathProcessMeeting, file, &body); err != nil {
		return nil, err
	}
	if body.MeetingID == "" {
		return nil, malformed(op, errors.New("missing meeting_id"))
	}
	return body.toDomain(), nil
}

// Transcribe uploads an audio file and returns its transcript.
func (c *Client) Transcribe(ctx context.Context, file domain.UploadSelection) (string, error) {
	const op = "transcribe"

	var body transcribeResponse
	if err := c.upload(ctx, op, pathTranscribe, file, &body); err != nil {
		return "", err
	}
	if body.Transcript == nil {
		return "", malformed(op, errors.New("missing transcript"))
	}
	return *body.Transcript, nil
}

// Summarize returns a summary of transcript.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	const op = "summarize"

	var body summarizeResponse
	if err := c.postJSON(ctx, op, pathSummarize, summarizeRequest{Transcript: transcript}, &body); err != nil {
		return "", err
	}
	if body.Summary == nil {
		return "", malformed(op, errors.New("missing summary"))
	}
	return *body.Summary, nil
}

// Search returns meetings whose transcript matches query.
// Backends that answer 404 for "no matching transcripts" yield an empty set.
// A 404 for the route itself stays an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	const op = "search"

	var body searchResponse
	err := c.postJSON(ctx, op, pathSearch, searchRequest{Query: query}, &body)
	if isNoMatches(err) {
		return []domain.SearchResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	return body.toDomain(), nil
}

// ExportURL returns the absolute URL of the static PDF for id.
func (c *Client) ExportURL(id domain.MeetingID) string {
	return c.resolve(domain.StaticPDFPath(id))
}

// DownloadExport writes the PDF export of id to w.
// The export endpoint either streams the PDF or answers with JSON naming
// where the generated file can be fetched.
func (c *Client) DownloadExport(ctx context.Context, id domain.MeetingID, w io.Writer) error {
	const op = "export"

	resp, err := c.get(ctx, op, c.resolve(exportPath(id)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isJSON(resp.Header.Get("Content-Type")) {
		return copyBody(op, w, resp.Body)
	}

	var body exportResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONBody)).Decode(&body); err != nil {
		return malformed(op, err)
	}
	if body.PDFLink == "" {
		return malformed(op, errors.New("missing pdf_link"))
	}
	logger.Debug("Export: %s", body.Message)

	pdf, err := c.get(ctx, op, c.resolve(body.PDFLink))
	if err != nil {
		return err
	}
	defer pdf.Body.Close()
	return copyBody(op, w, pdf.Body)
}

// resolve turns a backend-relative path (or absolute URL) into an absolute URL.
func (c *Client) resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return c.baseURL.String() + ref
	}
	if u.IsAbs() {
		return u.String()
	}
	return c.baseURL.String() + "/" + strings.TrimLeft(ref, "/")
}

// upload sends file as multipart field "file" and decodes the JSON answer.
func (c *Client) upload(ctx context.Context, op, path string, file domain.UploadSelection, out any) error {
	if file.IsZero() {
		return domain.ErrNoFileSelected
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidInput, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, file.Name, f))
	}()
	// Unblocks the writer if the request ends before reading the body.
	defer pr.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path), pr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doJSON(op, req, out)
}

func writeMultipart(mw *multipart.Writer, name string, src io.Reader) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     uploadField,
		"filename": name,
	}))
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return err
	}
	return mw.Close()
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(op, req, out)
}

func (c *Client) get(ctx context.Context, op, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.do(op, req)
}

func (c *Client) doJSON(op string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONBody)).Decode(out); err != nil {
		return malformed(op, err)
	}
	return nil
}

// do sends req and returns a 2xx response. The caller closes the body.
// Non-2xx responses become *domain.APIError.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limit wait: %w", op, err)
	}

	req.Header.Set(HeaderRequestID, uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Request(req.Method, req.URL.String(), 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, domain.ErrTransport, err)
	}
	logger.Request(req.Method, req.URL.String(), resp.StatusCode, time.Since(start))

	c.rateLimiter.UpdateFromResponse(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeAPIError(op, resp)
	}
	return resp, nil
}

func copyBody(op string, w io.Writer, body io.Reader) error {
	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("%s: copy pdf: %w", op, err)
	}
	return nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
