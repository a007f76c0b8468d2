package client

import (
	"context"
	"math"
	"strconv"

	"github.com/xxxsen/simpy/model"
)

const (
	DefaultLimit = 10
	// unlimited is what the service accepts as "everything".
	unlimited = math.MaxInt32
)

// LinkQuery selects links. Date restricts to links added on that day and,
// when set, AfterDate and BeforeDate are not sent. Dates use the yyyy-mm-dd
// form, see timeutil.FormatDate.
type LinkQuery struct {
	Q          string
	Date       string
	AfterDate  string
	BeforeDate string
	// Limit defaults to DefaultLimit when zero or negative.
	Limit int
}

func (q LinkQuery) params(limit int) Params {
	params := Params{}.
		Add(paramLimit, strconv.Itoa(limit)).
		Add(paramQ, q.Q)
	if q.Date != "" {
		return params.Add(paramDate, q.Date)
	}
	return params.
		Add(paramAfterDate, q.AfterDate).
		Add(paramBeforeDate, q.BeforeDate)
}

type SaveLinkRequest struct {
	Title      string
	Href       string
	AccessType model.AccessType
	// Tags is sent as is, in the service's comma separated form.
	Tags     string
	Nickname string
	Note     string
}

type linkElement struct {
	AccessType string  `xml:"accessType,attr"`
	URL        string  `xml:"url"`
	ModDate    string  `xml:"modDate"`
	AddDate    string  `xml:"addDate"`
	Title      string  `xml:"title"`
	Nickname   string  `xml:"nickname"`
	Note       string  `xml:"note"`
	Tags       tagList `xml:"tags"`
}

func decodeLinks(doc string) ([]model.Link, error) {
	items, err := collect[linkElement](doc, "link")
	if err != nil {
		return nil, err
	}
	links := make([]model.Link, 0, len(items))
	for _, item := range items {
		links = append(links, model.Link{
			AccessType: item.AccessType,
			URL:        item.URL,
			ModDate:    item.ModDate,
			AddDate:    item.AddDate,
			Title:      item.Title,
			Nickname:   item.Nickname,
			Note:       item.Note,
			Tags:       item.Tags.values(),
		})
	}
	return links, nil
}

// GetLinks returns the most relevant links for q, at most q.Limit of them.
func (c *Client) GetLinks(ctx context.Context, q LinkQuery) (Result[[]model.Link], error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return call(ctx, c, epGetLinks, q.params(limit), []model.Link{}, decodeLinks)
}

// GetAllLinks is GetLinks without a limit; q.Limit is ignored.
func (c *Client) GetAllLinks(ctx context.Context, q LinkQuery) (Result[[]model.Link], error) {
	return call(ctx, c, epGetLinks, q.params(unlimited), []model.Link{}, decodeLinks)
}

func (c *Client) SaveLink(ctx context.Context, req SaveLinkRequest) (Result[model.OperationStatus], error) {
	if req.Title == "" {
		return Result[model.OperationStatus]{}, requiredParam(paramTitle)
	}
	if req.Href == "" {
		return Result[model.OperationStatus]{}, requiredParam(paramHref)
	}
	params := Params{}.
		Add(paramTitle, req.Title).
		Add(paramHref, req.Href).
		Add(paramAccessType, strconv.Itoa(int(req.AccessType))).
		Add(paramTags, req.Tags).
		Add(paramURLNickname, req.Nickname).
		Add(paramNote, req.Note)
	return c.status(ctx, epSaveLink, params)
}

func (c *Client) DeleteLink(ctx context.Context, href string) (Result[model.OperationStatus], error) {
	if href == "" {
		return Result[model.OperationStatus]{}, requiredParam(paramHref)
	}
	return c.status(ctx, epDeleteLink, Params{}.Add(paramHref, href))
}
