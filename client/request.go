package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
)

type Param struct {
	Name  string
	Value string
}

// Params is an ordered query string. Order is kept on the wire.
type Params []Param

// Add appends name=value unless value is empty.
func (p Params) Add(name, value string) Params {
	if value == "" {
		return p
	}
	return append(p, Param{Name: name, Value: value})
}

func (p Params) Encode() string {
	var sb strings.Builder
	for i, kv := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.Value))
	}
	return sb.String()
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func (c *Client) buildRequest(ctx context.Context, ep endpoint, params Params) (*http.Request, error) {
	target := c.baseURL + ep.path
	if q := params.Encode(); q != "" {
		target += "?" + q
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", basicAuth(c.username, c.password))
	req.Header.Set("User-Agent", c.userAgent)
	if ep.form {
		req.Header.Set("Content-Type", formContentType)
	}
	return req, nil
}
