package fakesimpy

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sync"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const basePath = "/simpy/api/rest"

// Request is what the fake saw for one call.
type Request struct {
	Method   string
	Endpoint string
	RawQuery string
	Query    url.Values
	Header   http.Header
}

type reply struct {
	status int
	body   string
}

type options struct {
	gzip     bool
	accounts gin.Accounts
}

type Option func(*options)

// WithGzip compresses responses for clients that accept it.
func WithGzip() Option {
	return func(o *options) {
		o.gzip = true
	}
}

// WithAccount enables basic auth; unknown credentials get a 401.
func WithAccount(username, password string) Option {
	return func(o *options) {
		if o.accounts == nil {
			o.accounts = gin.Accounts{}
		}
		o.accounts[username] = password
	}
}

// Server is an in-process stand-in for the bookmarking service. Endpoints
// answer with whatever was registered through Respond, or 404 with an empty
// body.
type Server struct {
	URL string

	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
	srv      *httptest.Server
}

func New(opts ...Option) *Server {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	s := &Server{replies: make(map[string]reply)}
	engine.Use(s.record)
	if o.gzip {
		engine.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	if len(o.accounts) > 0 {
		engine.Use(gin.BasicAuth(o.accounts))
	}
	engine.GET(basePath+"/:endpoint", s.handle)
	s.srv = httptest.NewServer(engine)
	s.URL = s.srv.URL + basePath + "/"
	return s
}

func (s *Server) Close() {
	s.srv.Close()
}

// Respond makes endpoint (e.g. "GetTags.do") answer 200 with body.
func (s *Server) Respond(endpoint, body string) {
	s.RespondStatus(endpoint, http.StatusOK, body)
}

func (s *Server) RespondStatus(endpoint string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[endpoint] = reply{status: status, body: body}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, ok is false when none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(c *gin.Context) {
	req := Request{
		Method:   c.Request.Method,
		Endpoint: c.Param("endpoint"),
		RawQuery: c.Request.URL.RawQuery,
		Query:    c.Request.URL.Query(),
		Header:   c.Request.Header.Clone(),
	}
	if req.Endpoint == "" {
		req.Endpoint = path.Base(c.Request.URL.Path)
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	c.Next()
}

func (s *Server) handle(c *gin.Context) {
	s.mu.Lock()
	r, ok := s.replies[c.Param("endpoint")]
	s.mu.Unlock()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(r.status, "text/xml; charset=UTF-8", []byte(r.body))
}
