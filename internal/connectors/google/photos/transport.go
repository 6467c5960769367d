package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gphotos-mcp/internal/connectors/google"
)

// defaultBaseURL is the Photos Library API endpoint.
const defaultBaseURL = "https://photoslibrary.googleapis.com/v1"

// RESTExecutor implements Executor against the Photos Library REST
// API. It performs plain HTTP calls with OAuth credentials attached
// by the token provider; no caching, no throttling, no retries.
type RESTExecutor struct {
	httpClient *http.Client
	baseURL    string
}

// NewRESTExecutor creates an executor authenticated by the provider.
func NewRESTExecutor(ctx context.Context, provider google.TokenProvider) *RESTExecutor {
	return &RESTExecutor{
		httpClient: google.NewHTTPClient(ctx, provider),
		baseURL:    defaultBaseURL,
	}
}

type listAlbumsResponse struct {
	Albums        []*Album `json:"albums"`
	NextPageToken string   `json:"nextPageToken"`
}

// ListAlbums fetches one page of albums.
func (e *RESTExecutor) ListAlbums(ctx context.Context, pageSize int, pageToken string) ([]*Album, string, error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(pageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var out listAlbumsResponse
	if err := e.do(ctx, http.MethodGet, "/albums?"+query.Encode(), nil, &out); err != nil {
		return nil, "", err
	}
	return out.Albums, out.NextPageToken, nil
}

// apiDate is a calendar date in the wire format the API expects.
type apiDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type apiDateRange struct {
	StartDate apiDate `json:"startDate"`
	EndDate   apiDate `json:"endDate"`
}

type apiFilters struct {
	ContentFilter *struct {
		IncludedContentCategories []string `json:"includedContentCategories"`
	} `json:"contentFilter,omitempty"`
	DateFilter *struct {
		Ranges []apiDateRange `json:"ranges"`
	} `json:"dateFilter,omitempty"`
	MediaTypeFilter *struct {
		MediaTypes []string `json:"mediaTypes"`
	} `json:"mediaTypeFilter,omitempty"`
}

type searchRequest struct {
	Filters   *apiFilters `json:"filters,omitempty"`
	PageSize  int         `json:"pageSize"`
	PageToken string      `json:"pageToken,omitempty"`
}

type searchResponse struct {
	MediaItems    []*MediaItem `json:"mediaItems"`
	NextPageToken string       `json:"nextPageToken"`
}

// SearchMediaItems fetches one page of media items matching the filter.
func (e *RESTExecutor) SearchMediaItems(ctx context.Context, filter SearchFilter, pageSize int, pageToken string) ([]*MediaItem, string, error) {
	req := searchRequest{
		Filters:   buildAPIFilters(filter),
		PageSize:  pageSize,
		PageToken: pageToken,
	}

	var out searchResponse
	if err := e.do(ctx, http.MethodPost, "/mediaItems:search", req, &out); err != nil {
		return nil, "", err
	}
	return out.MediaItems, out.NextPageToken, nil
}

// GetMediaItem fetches a single media item by ID.
func (e *RESTExecutor) GetMediaItem(ctx context.Context, id string) (*MediaItem, error) {
	var out MediaItem
	if err := e.do(ctx, http.MethodGet, "/mediaItems/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type apiStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type mediaItemResult struct {
	MediaItem *MediaItem `json:"mediaItem"`
	Status    *apiStatus `json:"status"`
}

type batchGetResponse struct {
	MediaItemResults []mediaItemResult `json:"mediaItemResults"`
}

// BatchGetMediaItems fetches up to MaxBatchSize items in one call.
// Per-item failures come back as error entries in the result slice;
// only a whole-request failure returns an error.
func (e *RESTExecutor) BatchGetMediaItems(ctx context.Context, ids []string) ([]BatchResult, error) {
	query := url.Values{}
	for _, id := range ids {
		query.Add("mediaItemIds", id)
	}

	var out batchGetResponse
	if err := e.do(ctx, http.MethodGet, "/mediaItems:batchGet?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(out.MediaItemResults))
	for i, r := range out.MediaItemResults {
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		results[i] = BatchResult{ID: id}
		switch {
		case r.Status != nil:
			results[i].Err = fmt.Errorf("photos: media item %q: %s (code %d)", id, r.Status.Message, r.Status.Code)
		case r.MediaItem != nil:
			results[i].ID = r.MediaItem.ID
			results[i].Item = r.MediaItem
		default:
			results[i].Err = fmt.Errorf("photos: media item %q: empty batch result", id)
		}
	}
	return results, nil
}

type createAlbumRequest struct {
	Album struct {
		Title string `json:"title"`
	} `json:"album"`
}

// CreateAlbum creates a new album with the given title.
func (e *RESTExecutor) CreateAlbum(ctx context.Context, title string) (*Album, error) {
	var req createAlbumRequest
	req.Album.Title = title

	var out Album
	if err := e.do(ctx, http.MethodPost, "/albums", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one HTTP round trip and decodes the JSON response.
// Non-2xx statuses are translated through googleapi and the shared
// google error mapping.
func (e *RESTExecutor) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("photos request: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return google.WrapError(err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// buildAPIFilters converts a SearchFilter to the wire format. Returns
// nil for an empty filter so the request omits the filters object.
func buildAPIFilters(filter SearchFilter) *apiFilters {
	if filter.IsEmpty() {
		return nil
	}

	out := &apiFilters{}
	if len(filter.Categories) > 0 {
		out.ContentFilter = &struct {
			IncludedContentCategories []string `json:"includedContentCategories"`
		}{}
		for c := range filter.Categories {
			out.ContentFilter.IncludedContentCategories = append(out.ContentFilter.IncludedContentCategories, c)
		}
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		// The API requires both bounds; an open end is widened to the
		// representable extremes.
		start := apiDate{Year: 1970, Month: 1, Day: 1}
		end := apiDate{Year: 9999, Month: 12, Day: 31}
		if filter.StartDate != nil {
			t := filter.StartDate.UTC()
			start = apiDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
		}
		if filter.EndDate != nil {
			t := filter.EndDate.UTC()
			end = apiDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
		}
		out.DateFilter = &struct {
			Ranges []apiDateRange `json:"ranges"`
		}{Ranges: []apiDateRange{{StartDate: start, EndDate: end}}}
	}
	if len(filter.MediaTypes) > 0 {
		out.MediaTypeFilter = &struct {
			MediaTypes []string `json:"mediaTypes"`
		}{}
		for t := range filter.MediaTypes {
			out.MediaTypeFilter.MediaTypes = append(out.MediaTypeFilter.MediaTypes, string(t))
		}
	}
	return out
}
