package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/simpy/internal/fakesimpy"
	"github.com/xxxsen/simpy/model"
)

const (
	tagsBody = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE tags SYSTEM "GetTags.dtd">
<tags><tag name="java" count="5"/><tag name="web" count="2"/></tags>`
	okBody = `<status><code>0</code><message>ok</message></status>`
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestTagsCommand(t *testing.T) {
	srv := fakesimpy.New(fakesimpy.WithAccount("user", "secret"))
	defer srv.Close()
	srv.Respond("GetTags.do", tagsBody)

	out, _, err := execute(t, "tags", "--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.NoError(t, err)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal([]byte(out), &tags))
	assert.Equal(t, []model.Tag{{Name: "java", Count: 5}, {Name: "web", Count: 2}}, tags)
}

func TestConfigFile(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()
	srv.Respond("GetTags.do", tagsBody)

	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"username":"user","password":"secret","base_url":"` + srv.URL + `","user_agent":"cli-test"}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	_, _, err := execute(t, "tags", "--config", path)
	require.NoError(t, err)
	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "cli-test", req.Header.Get("User-Agent"))
}

func TestMissingCredentials(t *testing.T) {
	_, _, err := execute(t, "tags")
	require.Error(t, err)
}

func TestLinksCommand_Flags(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	_, _, err := execute(t, "links", "--username", "user", "--password", "secret", "--base-url", srv.URL,
		"--q", "go", "--date", "2024-01-02", "--after", "2023-01-01", "--limit", "3")
	require.NoError(t, err)
	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "GetLinks.do", req.Endpoint)
	assert.Equal(t, "limit=3&q=go&date=2024-01-02", req.RawQuery)
}

func TestLinksCommand_DateRange(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	_, _, err := execute(t, "links", "--username", "user", "--password", "secret", "--base-url", srv.URL,
		"--after", "2007-01-19T02:23:54Z", "--before", "2007-02-01")
	require.NoError(t, err)
	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "limit=10&afterDate=2007-01-19&beforeDate=2007-02-01", req.RawQuery)
}

func TestLinksCommand_InvalidDate(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	for _, flag := range []string{"--date", "--after", "--before"} {
		_, _, err := execute(t, "links", "--username", "user", "--password", "secret", "--base-url", srv.URL,
			flag, "19/01/2007")
		require.Error(t, err, flag)
		assert.Contains(t, err.Error(), "invalid "+flag)
	}
	assert.Empty(t, srv.Requests())
}

func TestNormalizeDate(t *testing.T) {
	v, err := normalizeDate("date", "")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = normalizeDate("date", "2004-05-10")
	require.NoError(t, err)
	assert.Equal(t, "2004-05-10", v)

	v, err = normalizeDate("date", "2004-05-10T23:59:59Z")
	require.NoError(t, err)
	assert.Equal(t, "2004-05-10", v)

	_, err = normalizeDate("date", "2004-05-10 ")
	require.Error(t, err)
}

func TestLinksCommand_All(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	out, stderr, err := execute(t, "links", "--all", "--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Empty(t, stderr)
	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "2147483647", req.Query.Get("limit"))
}

func TestSaveLinkCommand(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()
	srv.Respond("SaveLink.do", okBody)

	out, _, err := execute(t, "save-link", "title", "http://x", "--public", "--tags", "a,b",
		"--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.NoError(t, err)

	var status model.OperationStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.True(t, status.OK())
	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "title=title&href=http%3A%2F%2Fx&accessType=1&tags=a%2Cb", req.RawQuery)
}

func TestSaveLinkCommand_EmptyTitle(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	_, _, err := execute(t, "save-link", "", "http://x", "--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestTopicCommand_InvalidID(t *testing.T) {
	_, _, err := execute(t, "topic", "abc", "--username", "user", "--password", "secret")
	require.Error(t, err)
}

func TestDegradedResultWarns(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()
	srv.Respond("GetTags.do", `<tags><tag name="x" count="many"/></tags>`)

	out, stderr, err := execute(t, "tags", "--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, stderr, "http status 200")

	_, _, err = execute(t, "tags", "--strict", "--username", "user", "--password", "secret", "--base-url", srv.URL)
	require.Error(t, err)
}

func TestDemoCommand(t *testing.T) {
	srv := fakesimpy.New(fakesimpy.WithAccount("demo", "pw"))
	defer srv.Close()
	srv.Respond("GetTags.do", tagsBody)

	out, _, err := execute(t, "demo", "demo", "pw", "7", "--interval", "0", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Using: demo")
	assert.Contains(t, out, "----- getTopic -----")
	assert.NotContains(t, out, "----- getWatchlist -----")

	var endpoints []string
	for _, req := range srv.Requests() {
		endpoints = append(endpoints, req.Endpoint)
	}
	assert.Equal(t, []string{
		"GetTags.do", "GetLinks.do", "GetLinks.do", "GetTopics.do", "GetTopic.do", "GetNotes.do", "GetWatchlists.do",
	}, endpoints)
	assert.Equal(t, "7", srv.Requests()[4].Query.Get("topicId"))
}

func TestDemoCommand_Mutate(t *testing.T) {
	srv := fakesimpy.New()
	defer srv.Close()

	_, _, err := execute(t, "demo", "demo", "pw", "--mutate", "--interval", "0", "--base-url", srv.URL)
	require.NoError(t, err)

	var endpoints []string
	for _, req := range srv.Requests() {
		endpoints = append(endpoints, req.Endpoint)
	}
	assert.Contains(t, endpoints, "SaveLink.do")
	assert.Contains(t, endpoints, "SaveNote.do")
	assert.Contains(t, endpoints, "RenameTag.do")
	assert.Contains(t, endpoints, "MergeTags.do")
	assert.Contains(t, endpoints, "SplitTag.do")
}

func TestRunDemo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	step := demoStep{name: "noop", run: func(ctx context.Context) (any, error) {
		calls++
		return nil, nil
	}}
	err := runDemo(ctx, &bytes.Buffer{}, []demoStep{step, step}, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
