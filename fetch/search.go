package fetch

import "context"

// pageSize is the endpoint's hard per-call maximum for listing results.
const pageSize = 50

// search pages through the search endpoint until limit IDs are collected or
// the source is exhausted. A non-success page fails the whole search.
func (f *Fetcher) search(ctx context.Context, query SearchQuery, limit int) ([]string, error) {
	allIDs := []string{}
	token := ""
	for len(allIDs) < limit {
		query.MaxResults = int64(min(pageSize, limit-len(allIDs)))
		query.PageToken = token
		page, err := f.api.SearchPage(ctx, query)
		if err != nil {
			return nil, err
		}
		allIDs = append(allIDs, page.IDs...)
		token = page.NextPageToken
		if token == "" || len(page.IDs) == 0 {
			break
		}
	}

	return allIDs, nil
}

// playlistItems pages through one playlist. Unlike search, a failed page is
// treated as end-of-stream: whatever was collected so far is returned.
func (f *Fetcher) playlistItems(ctx context.Context, playlistID string, limit int) []string {
	allIDs := []string{}
	token := ""
	for len(allIDs) < limit {
		maxResults := int64(min(pageSize, limit-len(allIDs)))
		page, err := f.api.PlaylistPage(ctx, playlistID, maxResults, token)
		if err != nil {
			f.logger.Error("failed to fetch playlist page", err)
			break
		}
		allIDs = append(allIDs, page.IDs...)
		token = page.NextPageToken
		if token == "" || len(page.IDs) == 0 {
			break
		}
	}

	return allIDs
}
