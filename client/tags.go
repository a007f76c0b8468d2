package client

import (
	"context"

	"github.com/xxxsen/simpy/model"
)

type tagElement struct {
	Name  string `xml:"name,attr"`
	Count string `xml:"count,attr"`
}

func decodeTags(doc string) ([]model.Tag, error) {
	items, err := collect[tagElement](doc, "tag")
	if err != nil {
		return nil, err
	}
	tags := make([]model.Tag, 0, len(items))
	for _, item := range items {
		count, err := atoi("count", item.Count)
		if err != nil {
			return nil, err
		}
		tags = append(tags, model.Tag{Name: item.Name, Count: count})
	}
	return tags, nil
}

func (c *Client) GetTags(ctx context.Context) (Result[[]model.Tag], error) {
	return call(ctx, c, epGetTags, nil, []model.Tag{}, decodeTags)
}

func (c *Client) RemoveTag(ctx context.Context, tag string) (Result[model.OperationStatus], error) {
	return c.status(ctx, epRemoveTag, Params{}.Add(paramTag, tag))
}

func (c *Client) RenameTag(ctx context.Context, fromTag, toTag string) (Result[model.OperationStatus], error) {
	params := Params{}.
		Add(paramFromTag, fromTag).
		Add(paramToTag, toTag)
	return c.status(ctx, epRenameTag, params)
}

// MergeTags merges fromTag1 and fromTag2 into toTag.
func (c *Client) MergeTags(ctx context.Context, fromTag1, fromTag2, toTag string) (Result[model.OperationStatus], error) {
	params := Params{}.
		Add(paramFromTag1, fromTag1).
		Add(paramFromTag2, fromTag2).
		Add(paramToTag, toTag)
	return c.status(ctx, epMergeTags, params)
}

// SplitTag splits tag into toTag1 and toTag2.
func (c *Client) SplitTag(ctx context.Context, tag, toTag1, toTag2 string) (Result[model.OperationStatus], error) {
	params := Params{}.
		Add(paramTag, tag).
		Add(paramToTag1, toTag1).
		Add(paramToTag2, toTag2)
	return c.status(ctx, epSplitTag, params)
}
