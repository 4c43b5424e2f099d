package tags

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the public LeetCode GraphQL endpoint.
const DefaultEndpoint = "https://leetcode.com/graphql"

const questionQuery = `query questionData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    difficulty
    topicTags { slug }
  }
}`

// Metadata is what the remote endpoint knows about a problem.
type Metadata struct {
	Number     int
	Title      string
	Difficulty string
	Tags       []string
}

// Fetcher looks up problem metadata by slug. Implementations are best effort:
// callers treat any error as "no metadata" and proceed.
type Fetcher interface {
	Fetch(ctx context.Context, slug string) (*Metadata, error)
}

type httpFetcher struct {
	endpoint string
	http     *http.Client
}

// NewHTTPFetcher creates a Fetcher against the given GraphQL endpoint. An
// empty endpoint uses DefaultEndpoint.
func NewHTTPFetcher(endpoint string) Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &httpFetcher{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type questionResponse struct {
	Data struct {
		Question *struct {
			QuestionFrontendID string `json:"questionFrontendId"`
			Title              string `json:"title"`
			Difficulty         string `json:"difficulty"`
			TopicTags          []struct {
				Slug string `json:"slug"`
			} `json:"topicTags"`
		} `json:"question"`
	} `json:"data"`
}

func (f *httpFetcher) Fetch(ctx context.Context, slug string) (*Metadata, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     questionQuery,
		Variables: map[string]any{"titleSlug": slug},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	var decoded questionResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	q := decoded.Data.Question
	if q == nil {
		return nil, fmt.Errorf("unknown problem %q", slug)
	}

	meta := &Metadata{
		Title:      q.Title,
		Difficulty: q.Difficulty,
	}
	// questionFrontendId arrives as a string
	fmt.Sscanf(q.QuestionFrontendID, "%d", &meta.Number)
	for _, t := range q.TopicTags {
		meta.Tags = append(meta.Tags, t.Slug)
	}
	return meta, nil
}
