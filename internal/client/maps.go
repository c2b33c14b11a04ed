package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const mapStatsPrefix = "map-stats/map/"

// MapsClient implements teamwork.MapsClient.
type MapsClient struct {
	requester teamwork.Requester
	logger    teamwork.Logger
}

// NewMapsClient creates a new map statistics client.
func NewMapsClient(requester teamwork.Requester, logger teamwork.Logger) *MapsClient {
	if logger == nil {
		logger = teamwork.NopLogger()
	}

	return &MapsClient{
		requester: requester,
		logger:    logger,
	}
}

// Stats implements teamwork.MapsClient.Stats.
// The name is resolved against the map catalog and the first match is
// fetched. Without a match nothing is requested and the result is absent.
func (c *MapsClient) Stats(ctx context.Context, name string) (mo.Option[teamwork.Map], error) {
	names := teamwork.ResolveMapNames(name)
	if len(names) == 0 {
		c.logger.Debug("No catalog map matches query", map[string]interface{}{
			"query": name,
		})

		return mo.None[teamwork.Map](), nil
	}

	return execute[teamwork.Map](ctx, c.requester, mapStatsPrefix+url.PathEscape(names[0]), "getting map stats")
}

// StatsForAll implements teamwork.MapsClient.StatsForAll.
// Every catalog map matching query is fetched concurrently; results keep
// catalog order.
func (c *MapsClient) StatsForAll(ctx context.Context, query string) ([]teamwork.MapStatsResult, error) {
	names := teamwork.ResolveMapNames(query)

	descriptors := lo.Map(names, func(name string, _ int) string {
		return mapStatsPrefix + url.PathEscape(name)
	})

	batch := teamwork.ExecuteBatch[teamwork.Map](ctx, c.requester, descriptors)

	results := lo.Map(batch, func(result teamwork.BatchResult[teamwork.Map], index int) teamwork.MapStatsResult {
		return teamwork.MapStatsResult{
			Name:  names[index],
			Stats: result.Value,
			Err:   result.Err,
		}
	})

	err := ctx.Err()
	if err != nil {
		return results, fmt.Errorf("getting map stats for %q: %w", query, err)
	}

	return results, nil
}

// Thumbnail implements teamwork.MapsClient.Thumbnail.
func (c *MapsClient) Thumbnail(ctx context.Context, name string) (mo.Option[teamwork.MapThumbnail], error) {
	path := "map-stats/mapthumbnail/" + url.PathEscape(name)

	return execute[teamwork.MapThumbnail](ctx, c.requester, path, "getting map thumbnail")
}

// ThumbnailContext implements teamwork.MapsClient.ThumbnailContext.
func (c *MapsClient) ThumbnailContext(ctx context.Context, name string) (mo.Option[teamwork.ThumbnailContext], error) {
	path := "map-stats/mapimages/" + url.PathEscape(name)

	return execute[teamwork.ThumbnailContext](ctx, c.requester, path, "getting map images")
}

// Search implements teamwork.MapsClient.Search.
func (c *MapsClient) Search(ctx context.Context, term string) (mo.Option[[]teamwork.Map], error) {
	path := "map-stats/search?search_term=" + url.QueryEscape(term)

	return execute[[]teamwork.Map](ctx, c.requester, path, "searching maps")
}
