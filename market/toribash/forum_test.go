package toribash

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukehollenback/toribank/credentials"
	"github.com/lukehollenback/toribank/pacer"
)

const (
	testUsername  = "me"
	testPassword  = "hunter2"
	testUserID    = 777
	testToken     = "tok-1"
	sessionCookie = "bbsessionhash"
)

//
// bankCall is one request that the fake forum received on its bank endpoint.
//
type bankCall struct {
	op   string
	form url.Values
}

//
// fakeForum stands in for the forum. It knows a handful of users, hands out a session cookie for the
// right password, and records every bank call it receives.
//
type fakeForum struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	users      map[string]int
	bankCalls  []bankCall
	loginForms []url.Values

	omitStatusUser bool
	failOp         string
	failStatus     int
}

func newFakeForum(t *testing.T) *fakeForum {
	t.Helper()

	o := &fakeForum{
		t: t,
		users: map[string]int{
			testUsername: testUserID,
			"alice":      1001,
			"suomynona":  2002,
			"hampa":      3003,
			"example":    4004,
			"bob":        5005,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login.php", o.handleLogin)
	mux.HandleFunc("/bank_ajax.php", o.handleBank)
	mux.HandleFunc("/tori_market.php", o.handleMarket)

	o.server = httptest.NewServer(mux)
	t.Cleanup(o.server.Close)

	return o
}

func (o *fakeForum) client(t *testing.T, opts ...Option) *Client {
	t.Helper()

	base := []Option{
		WithBaseURL(o.server.URL),
		WithPacer(pacer.New(0, 0)),
		WithLogger(log.New(io.Discard, "", 0)),
		WithColors(false),
	}

	c, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)

	return c
}

func (o *fakeForum) loggedInClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	c := o.client(t, opts...)
	require.NoError(t, c.Login(context.Background(), testUsername, credentials.Hash(testPassword)))

	o.reset()

	return c
}

func (o *fakeForum) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.bankCalls = nil
}

func (o *fakeForum) calls() []bankCall {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]bankCall(nil), o.bankCalls...)
}

func (o *fakeForum) ops() []string {
	var ops []string

	for _, call := range o.calls() {
		ops = append(ops, call.op)
	}

	return ops
}

func (o *fakeForum) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		o.t.Errorf("failed to encode fake response: %s", err)
	}
}

func (o *fakeForum) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)

	return err == nil && cookie.Value == "session-"+testUsername
}

func (o *fakeForum) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	o.mu.Lock()
	o.loginForms = append(o.loginForms, r.PostForm)
	o.mu.Unlock()

	if r.PostForm.Get("vb_login_md5password") == credentials.Hash(testPassword) {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "session-" + r.PostForm.Get("vb_login_username"), Path: "/"})
	}

	_, _ = io.WriteString(w, "<html>Thank you for logging in</html>")
}

func (o *fakeForum) handleMarket(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") != "json" {
		http.Error(w, "unsupported format", http.StatusBadRequest)

		return
	}

	if o.omitStatusUser {
		o.writeJSON(w, map[string]interface{}{"market": "open"})

		return
	}

	user := map[string]interface{}{"userid": 0}
	if o.authenticated(r) {
		user = map[string]interface{}{"userid": strconv.Itoa(testUserID), "username": testUsername}
	}

	o.writeJSON(w, map[string]interface{}{"user": user})
}

func (o *fakeForum) handleBank(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") != AcceptHeader {
		o.t.Errorf("request to %s without a JSON accept header", r.URL)
	}

	//
	// The token is fetched with a GET; every other operation is a form POST.
	//
	if r.Method == http.MethodGet {
		if r.URL.Query().Get("bank_ajax") != "get_token" {
			http.Error(w, "unknown operation", http.StatusBadRequest)

			return
		}

		token := ""
		if o.authenticated(r) {
			token = testToken
		}

		o.writeJSON(w, map[string]string{"token": token})

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	op := r.PostForm.Get("bank_ajax")

	o.mu.Lock()
	o.bankCalls = append(o.bankCalls, bankCall{op: op, form: r.PostForm})
	o.mu.Unlock()

	if op == o.failOp {
		http.Error(w, "bank is closed", o.failStatus)

		return
	}

	switch op {
	case "get_userinfo":
		o.writeJSON(w, map[string]interface{}{"users": o.lookup(r.PostForm)})
	case "get_inventory":
		o.writeJSON(w, map[string]interface{}{
			"userid": r.PostForm.Get("userid"),
			"offset": r.PostForm.Get("offset"),
			"items":  []map[string]int{{"inventid": 50000}},
		})
	case "get_items":
		var items []map[string]string
		for _, id := range strings.Split(r.PostForm.Get("inventid"), ",") {
			items = append(items, map[string]string{"inventid": id})
		}

		o.writeJSON(w, map[string]interface{}{"items": items})
	case "send_items", "send_tc":
		if r.PostForm.Get("token") != testToken {
			o.writeJSON(w, map[string]string{"error": "Invalid security token"})

			return
		}

		o.writeJSON(w, map[string]interface{}{"success": true})
	default:
		http.Error(w, "unknown operation", http.StatusBadRequest)
	}
}

//
// lookup answers a user info request either by username or by user id. Unknown names are left out,
// just like the real thing does.
//
func (o *fakeForum) lookup(form url.Values) []map[string]interface{} {
	users := make([]map[string]interface{}, 0)

	if names := form.Get("username"); names != "" {
		for _, name := range strings.Split(names, ",") {
			if id, ok := o.users[strings.ToLower(name)]; ok {
				users = append(users, map[string]interface{}{"userid": strconv.Itoa(id), "username": name, "tc": 100})
			}
		}

		return users
	}

	for _, raw := range strings.Split(form.Get("userid"), ",") {
		id, _ := strconv.Atoi(raw)

		for name, known := range o.users {
			if known == id {
				users = append(users, map[string]interface{}{"userid": id, "username": name, "tc": 100})
			}
		}
	}

	return users
}
