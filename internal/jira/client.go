// Package jira wraps the go-jira library with the board, sprint and issue
// operations this tool needs, converting library models into our own types.
package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jira "github.com/andygrunwald/go-jira"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/svanharmelen/jira/internal/config"
	"github.com/svanharmelen/jira/pkg/types"
)

const maxResults = 50

// Client wraps Jira API client functionality.
type Client struct {
	client *jira.Client
	logger *zap.Logger
}

// New creates a client for the configured organization. A personal access
// token selects bearer auth, otherwise user+token basic auth is used.
func New(cfg config.Config, logger *zap.Logger) (*Client, error) {
	baseURL := fmt.Sprintf("https://%s.atlassian.net/", cfg.Organization)

	var httpClient *http.Client
	if cfg.PAT != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.PAT})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		tp := jira.BasicAuthTransport{
			Username: cfg.User,
			Password: cfg.Token,
		}
		httpClient = tp.Client()
	}

	return newClient(httpClient, baseURL, logger)
}

func newClient(httpClient *http.Client, baseURL string, logger *zap.Logger) (*Client, error) {
	// A nil *http.Client becomes a non-nil interface value inside
	// jira.NewClient, defeating its nil check, so apply the same
	// default here.
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Boards retrieves all boards the caller has access to.
func (c *Client) Boards(ctx context.Context) ([]types.Board, error) {
	var boards []types.Board

	opts := &jira.BoardListOptions{}
	for {
		list, _, err := c.client.Board.GetAllBoardsWithContext(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch boards: %w", err)
		}
		for _, board := range list.Values {
			boards = append(boards, types.Board{
				ID:   board.ID,
				Name: board.Name,
				Type: board.Type,
			})
		}
		if list.IsLast || len(list.Values) == 0 {
			break
		}
		opts.StartAt += len(list.Values)
	}

	c.logger.Debug("fetched boards", zap.Int("count", len(boards)))
	return boards, nil
}

// Board retrieves a single board by ID.
func (c *Client) Board(ctx context.Context, id int) (*types.Board, error) {
	board, _, err := c.client.Board.GetBoardWithContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &types.Board{
		ID:   board.ID,
		Name: board.Name,
		Type: board.Type,
	}, nil
}

// Sprints retrieves the sprints of a board, filtered by state. The state is
// passed through to the API: "", "active", "future" or "active,future".
func (c *Client) Sprints(ctx context.Context, boardID int, state string) ([]types.Sprint, error) {
	var sprints []types.Sprint

	opts := &jira.GetAllSprintsOptions{State: state}
	for {
		list, _, err := c.client.Board.GetAllSprintsWithOptionsWithContext(ctx, boardID, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch sprints: %w", err)
		}
		for _, sprint := range list.Values {
			sprints = append(sprints, types.Sprint{
				ID:            sprint.ID,
				Name:          sprint.Name,
				State:         sprint.State,
				StartDate:     sprint.StartDate,
				EndDate:       sprint.EndDate,
				OriginBoardID: sprint.OriginBoardID,
			})
		}
		if list.IsLast || len(list.Values) == 0 {
			break
		}
		opts.StartAt += len(list.Values)
	}

	c.logger.Debug("fetched sprints", zap.Int("board", boardID), zap.Int("count", len(sprints)))
	return sprints, nil
}

// Sprint retrieves a single sprint by ID. The library has no endpoint for
// this, so the request is built through its extension mechanism.
func (c *Client) Sprint(ctx context.Context, id int) (*types.Sprint, error) {
	req, err := c.client.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("rest/agile/1.0/sprint/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	sprint := new(types.Sprint)
	if _, err := c.client.Do(req, sprint); err != nil {
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}

	return sprint, nil
}

// SearchBoardIssues retrieves all issues of a board matching the given JQL,
// projected to the given fields, following server-side pagination. Issues
// come back in the order requested by the JQL's ORDER BY clause.
func (c *Client) SearchBoardIssues(ctx context.Context, boardID int, jql string, fields []string) ([]types.Issue, error) {
	var issues []types.Issue

	startAt := 0
	for {
		query := url.Values{}
		query.Set("jql", jql)
		query.Set("fields", strings.Join(fields, ","))
		query.Set("startAt", fmt.Sprint(startAt))
		query.Set("maxResults", fmt.Sprint(maxResults))

		path := fmt.Sprintf("rest/agile/1.0/board/%d/issue?%s", boardID, query.Encode())
		req, err := c.client.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		page := new(types.SearchResult)
		if _, err := c.client.Do(req, page); err != nil {
			return nil, fmt.Errorf("failed to search issues: %w", err)
		}

		issues = append(issues, page.Issues...)
		startAt += len(page.Issues)
		if len(page.Issues) == 0 || startAt >= page.Total {
			break
		}
	}

	c.logger.Debug("fetched issues", zap.String("jql", jql), zap.Int("count", len(issues)))
	return issues, nil
}

type timeTrackingUpdate struct {
	OriginalEstimate  int64 `json:"originalEstimate"`
	RemainingEstimate int64 `json:"remainingEstimate"`
}

// UpdateEstimates sets the original and remaining estimate of an issue, in
// whole minutes.
func (c *Client) UpdateEstimates(ctx context.Context, issueID string, estimate, remaining int64) error {
	body := map[string]map[string]timeTrackingUpdate{
		"fields": {
			"timetracking": {
				OriginalEstimate:  estimate,
				RemainingEstimate: remaining,
			},
		},
	}

	req, err := c.client.NewRequestWithContext(ctx, http.MethodPut, "rest/api/2/issue/"+issueID, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if _, err := c.client.Do(req, nil); err != nil {
		return fmt.Errorf("failed to update issue %s: %w", issueID, err)
	}

	c.logger.Debug("updated estimates",
		zap.String("issue", issueID),
		zap.Int64("estimate_min", estimate),
		zap.Int64("remaining_min", remaining),
	)
	return nil
}
