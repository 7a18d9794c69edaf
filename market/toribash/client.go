package toribash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"golang.org/x/net/publicsuffix"

	"github.com/lukehollenback/toribank/constants"
	"github.com/lukehollenback/toribank/market"
	"github.com/lukehollenback/toribank/pacer"
)

//
// Client implements the market.Client interface for the Toribash forum market. It holds the forum
// session (as cookies), the security token, and the authenticated user's id.
//
// NOTE ~> A client is not safe for concurrent use. Requests are issued one at a time and paced, so
//  there is nothing to gain from sharing one between goroutines anyway.
//
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	pacer      *pacer.Pacer
	logger     *log.Logger
	au         aurora.Aurora
	confirm    market.ConfirmFunc

	token  string
	userID int
}

var _ market.Client = (*Client)(nil)

//
// Option customizes a client as it is being created.
//
type Option func(*Client) error

//
// WithBaseURL points the client at a different forum installation.
//
func WithBaseURL(raw string) Option {
	return func(o *Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}

		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url %q: %w", raw, err)
		}

		o.baseURL = u

		return nil
	}
}

//
// WithHTTPClient makes the client send its requests through the provided HTTP client. A cookie jar
// is attached to a copy of it if it has none, since the forum session lives in cookies.
//
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Client) error {
		copied := *httpClient

		if copied.Jar == nil {
			jar, err := newJar()
			if err != nil {
				return err
			}

			copied.Jar = jar
		}

		o.httpClient = &copied

		return nil
	}
}

//
// WithPacer replaces the pacer that every remote call is routed through.
//
func WithPacer(p *pacer.Pacer) Option {
	return func(o *Client) error {
		o.pacer = p

		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *Client) error {
		o.logger = logger

		return nil
	}
}

func WithColors(enabled bool) Option {
	return func(o *Client) error {
		o.au = aurora.NewAurora(enabled)

		return nil
	}
}

//
// WithConfirm sets the policy that decides whether or not a transfer goes ahead. Without one, every
// transfer that asks for confirmation is declined.
//
func WithConfirm(confirm market.ConfirmFunc) Option {
	return func(o *Client) error {
		o.confirm = confirm

		return nil
	}
}

//
// NewClient instantiates a new client. Unless told otherwise, it talks to the public forum through
// an HTTP client without a timeout and paces its calls for the market's rate limit.
//
func NewClient(opts ...Option) (*Client, error) {
	jar, err := newJar()
	if err != nil {
		return nil, err
	}

	o := &Client{
		httpClient: &http.Client{Jar: jar},
		pacer:      pacer.Default(),
		logger:     constants.NewLogger(Name),
		au:         aurora.NewAurora(true),
		confirm:    market.NeverConfirm,
	}

	if err := WithBaseURL(BaseURL)(o); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func newJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

//
// UserID returns the authenticated user's id, or zero before a successful login.
//
func (o *Client) UserID() int {
	return o.userID
}

func (o *Client) Token() string {
	return o.token
}

func (o *Client) LoggedIn() bool {
	return o.token != "" && o.userID != 0
}

//
// endpoint resolves the provided path (which may carry a query) against the base URL and adds the
// provided query parameters on top.
//
func (o *Client) endpoint(path string, query url.Values) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}

	u := o.baseURL.ResolveReference(ref)

	if len(query) > 0 {
		q := u.Query()

		for key, values := range query {
			for _, value := range values {
				q.Add(key, value)
			}
		}

		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

//
// request makes the specified paced request to the forum and returns a wrapped response and/or an
// error if something went wrong. A non-nil form is sent url-encoded as the request body.
//
func (o *Client) request(ctx context.Context, method string, path string, query url.Values, form url.Values) (*Response, error) {
	endpoint, err := o.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	return pacer.Call(o.pacer, func() (*Response, error) {
		return o.do(ctx, method, endpoint, form)
	})
}

func (o *Client) do(ctx context.Context, method string, endpoint string, form url.Values) (*Response, error) {
	//
	// Make a request to the endpoint.
	//
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", AcceptHeader)

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	//
	// Make sure the status code was valid.
	//
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, market.NewHTTPError(resp.StatusCode, endpoint)
	}

	//
	// Read the response.
	//
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		response: resp,
		body:     respBody,
	}, nil
}

//
// bankAjax posts the provided parameters to the bank endpoint for the specified operation and
// returns the wrapped response. Errors that the market reports inside the payload are surfaced as
// an APIError.
//
func (o *Client) bankAjax(ctx context.Context, op market.Operation, params url.Values) (*Response, error) {
	params.Set(bankOperationKey, op.String())

	requestID := uuid.NewString()

	o.logger.Printf("Request %s ↝ %s", o.au.Faint(requestID), op)

	resp, err := o.request(ctx, http.MethodPost, BankPath, nil, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	//
	// Check the response for API errors.
	//
	apiErr := &APIError{Op: op.String()}

	_ = json.Unmarshal(resp.body, apiErr)

	if apiErr.populated() {
		return resp, apiErr
	}

	return resp, nil
}

//
// toriMarket retrieves the market's status payload, which describes (among other things) the user
// whose session made the request.
//
func (o *Client) toriMarket(ctx context.Context) (*Response, error) {
	return o.request(ctx, http.MethodGet, MarketPath, url.Values{marketFormatKey: {marketFormatJSON}}, nil)
}

//
// commaSeparated joins the provided ids for parameters that take multiple values.
//
func commaSeparated(ids []int) string {
	strs := make([]string, len(ids))

	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}

	return strings.Join(strs, ",")
}

func flag(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
