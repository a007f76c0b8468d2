package client

import (
	"context"
	"strconv"

	"github.com/xxxsen/simpy/model"
)

type userElement struct {
	Username string `xml:"username,attr"`
}

type filterElement struct {
	Name  string `xml:"name,attr"`
	Query string `xml:"query,attr"`
}

func toUsers(items []userElement) []model.User {
	users := make([]model.User, 0, len(items))
	for _, item := range items {
		users = append(users, model.User{Username: item.Username})
	}
	return users
}

func toFilters(items []filterElement) []model.Filter {
	filters := make([]model.Filter, 0, len(items))
	for _, item := range items {
		filters = append(filters, model.Filter{Name: item.Name, Query: item.Query})
	}
	return filters
}

// topicElement also describes a watchlist, both carry the same shape.
type topicElement struct {
	ID          string          `xml:"id,attr"`
	Name        string          `xml:"name,attr"`
	Description string          `xml:"description,attr"`
	AddDate     string          `xml:"addDate,attr"`
	NewLinks    string          `xml:"newLinks,attr"`
	Users       []userElement   `xml:"user"`
	Filters     []filterElement `xml:"filter"`
}

func (e topicElement) counts() (id int, newLinks int, err error) {
	if id, err = atoi("id", e.ID); err != nil {
		return 0, 0, err
	}
	if newLinks, err = atoi("newLinks", e.NewLinks); err != nil {
		return 0, 0, err
	}
	return id, newLinks, nil
}

func (e topicElement) topic() (model.Topic, error) {
	id, newLinks, err := e.counts()
	if err != nil {
		return model.Topic{}, err
	}
	t := model.Topic{
		ID:          id,
		Name:        e.Name,
		Description: e.Description,
		AddDate:     e.AddDate,
		NewLinks:    newLinks,
		Users:       toUsers(e.Users),
	}
	if n := len(e.Filters); n > 0 {
		f := model.Filter{Name: e.Filters[n-1].Name, Query: e.Filters[n-1].Query}
		t.Filter = &f
	}
	return t, nil
}

func decodeTopics(doc string) ([]model.Topic, error) {
	items, err := collect[topicElement](doc, "topic")
	if err != nil {
		return nil, err
	}
	topics := make([]model.Topic, 0, len(items))
	for _, item := range items {
		topic, err := item.topic()
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// decodeTopic keeps the last topic in the document.
func decodeTopic(doc string) (*model.Topic, error) {
	topics, err := decodeTopics(doc)
	if err != nil || len(topics) == 0 {
		return nil, err
	}
	return &topics[len(topics)-1], nil
}

// GetTopics returns the account's topics with the number of links added to
// each since the last login.
func (c *Client) GetTopics(ctx context.Context) (Result[[]model.Topic], error) {
	return call(ctx, c, epGetTopics, nil, []model.Topic{}, decodeTopics)
}

// GetTopic returns nil in Value when the response holds no topic.
func (c *Client) GetTopic(ctx context.Context, topicID int) (Result[*model.Topic], error) {
	params := Params{}.Add(paramTopicID, strconv.Itoa(topicID))
	return call(ctx, c, epGetTopic, params, (*model.Topic)(nil), decodeTopic)
}
