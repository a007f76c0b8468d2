package client

import (
	"context"
	"strconv"

	"github.com/xxxsen/simpy/model"
)

func (e topicElement) watchlist() (model.Watchlist, error) {
	id, newLinks, err := e.counts()
	if err != nil {
		return model.Watchlist{}, err
	}
	return model.Watchlist{
		ID:          id,
		Name:        e.Name,
		Description: e.Description,
		AddDate:     e.AddDate,
		NewLinks:    newLinks,
		Users:       toUsers(e.Users),
		Filters:     toFilters(e.Filters),
	}, nil
}

func decodeWatchlists(doc string) ([]model.Watchlist, error) {
	items, err := collect[topicElement](doc, "watchlist")
	if err != nil {
		return nil, err
	}
	watchlists := make([]model.Watchlist, 0, len(items))
	for _, item := range items {
		watchlist, err := item.watchlist()
		if err != nil {
			return nil, err
		}
		watchlists = append(watchlists, watchlist)
	}
	return watchlists, nil
}

func decodeWatchlist(doc string) (*model.Watchlist, error) {
	watchlists, err := decodeWatchlists(doc)
	if err != nil || len(watchlists) == 0 {
		return nil, err
	}
	return &watchlists[len(watchlists)-1], nil
}

func (c *Client) GetWatchlists(ctx context.Context) (Result[[]model.Watchlist], error) {
	return call(ctx, c, epGetWatchlists, nil, []model.Watchlist{}, decodeWatchlists)
}

// GetWatchlist returns nil in Value when the response holds no watchlist.
func (c *Client) GetWatchlist(ctx context.Context, watchlistID int) (Result[*model.Watchlist], error) {
	params := Params{}.Add(paramWatchlistID, strconv.Itoa(watchlistID))
	return call(ctx, c, epGetWatchlist, params, (*model.Watchlist)(nil), decodeWatchlist)
}
