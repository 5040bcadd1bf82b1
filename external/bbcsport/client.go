package bbcsport

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"github.com/riskibarqy/matchday-scraper/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL           = "https://web-cdn.api.bbci.co.uk/wc-poll-data/container"
	defaultCommentaryBaseURL = "https://www.bbc.com/wc-data/container/stream"
	defaultTeamURN           = "urn:bbc:sportsdata:football:team:tranmere-rovers"
	defaultUserAgent         = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36"
	eventURNPrefix           = "urn:bbc:sportsdata:football:event:"
	commentaryPageSize       = 20
	commentaryPageURL        = "/sport/football/live/c0mn93jz28nt"
	maxResponseBodySize      = 6 << 20
)

var (
	// ErrNoFixture means the listing has no match for the requested date.
	ErrNoFixture = crerr.New("no fixture on date")
	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = crerr.New("sport data feed is temporarily unavailable")

	errFeedTransient = crerr.New("sport data feed transient failure")
)

type ClientConfig struct {
	HTTPClient        *fasthttp.Client
	BaseURL           string
	CommentaryBaseURL string
	TeamURN           string
	UserAgent         string
	Timeout           time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
	Today             func() time.Time
}

type Client struct {
	httpClient        *fasthttp.Client
	baseURL           string
	commentaryBaseURL string
	teamURN           string
	userAgent         string
	timeout           time.Duration
	maxRetries        int
	retryBackoff      time.Duration
	logger            *logging.Logger
	breaker           *resilience.CircuitBreaker
	circuitEnabled    bool
	today             func() time.Time
}

// FixtureRef identifies the match found for a date.
type FixtureRef struct {
	MatchID    string
	ResourceID string
}

// Matchday holds every raw document fetched for one match date, keyed by
// rawdata kind. The commentary entry is a JSON array of stream pages.
type Matchday struct {
	GameDate  string
	Fixture   FixtureRef
	Documents map[string][]byte
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "matchday-scraper",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBodySize,
			NoDefaultUserAgentHeader: true,
		}
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}

	today := cfg.Today
	if today == nil {
		today = time.Now
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:        httpClient,
		baseURL:           trimBaseURL(cfg.BaseURL, defaultBaseURL),
		commentaryBaseURL: trimBaseURL(cfg.CommentaryBaseURL, defaultCommentaryBaseURL),
		teamURN:           firstNonEmpty(cfg.TeamURN, defaultTeamURN),
		userAgent:         firstNonEmpty(cfg.UserAgent, defaultUserAgent),
		timeout:           timeout,
		maxRetries:        maxInt(cfg.MaxRetries, 0),
		retryBackoff:      retryBackoff,
		logger:            logger,
		breaker:           resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled:    breakerCfg.Enabled,
		today:             today,
	}
}

// FetchFixture finds the tracked team's match on gameDate.
func (c *Client) FetchFixture(ctx context.Context, gameDate string) (FixtureRef, []byte, error) {
	query := url.Values{}
	query.Set("selectedEndDate", gameDate)
	query.Set("selectedStartDate", gameDate)
	query.Set("todayDate", c.today().Format("2006-01-02"))
	query.Set("urn", c.teamURN)
	query.Set("useSdApi", "false")

	raw, err := c.get(ctx, c.baseURL+"/sport-data-scores-fixtures", query)
	if err != nil {
		return FixtureRef{}, nil, crerr.Wrapf(err, "fetch fixtures date=%s", gameDate)
	}

	var doc FixturesDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return FixtureRef{}, nil, crerr.Wrapf(err, "decode fixtures date=%s", gameDate)
	}

	if len(doc.EventGroups) == 0 {
		return FixtureRef{}, raw, crerr.Wrapf(ErrNoFixture, "date=%s", gameDate)
	}
	group := doc.EventGroups[0]
	if len(group.SecondaryGroups) == 0 || len(group.SecondaryGroups[0].Events) == 0 {
		return FixtureRef{}, raw, crerr.Wrapf(ErrNoFixture, "date=%s has an empty event group", gameDate)
	}

	event := group.SecondaryGroups[0].Events[0]
	ref := FixtureRef{
		MatchID:    event.ID.String(),
		ResourceID: event.TipoTopicID.String(),
	}
	if ref.MatchID == "" {
		return FixtureRef{}, raw, crerr.Wrapf(ErrNoFixture, "date=%s event has no id", gameDate)
	}

	return ref, raw, nil
}

// FetchMatchday pulls every document for the match on gameDate, one request
// at a time.
func (c *Client) FetchMatchday(ctx context.Context, gameDate string) (Matchday, error) {
	ref, fixtureRaw, err := c.FetchFixture(ctx, gameDate)
	if err != nil {
		return Matchday{}, err
	}

	out := Matchday{
		GameDate:  gameDate,
		Fixture:   ref,
		Documents: make(map[string][]byte, len(rawdata.Kinds)),
	}
	out.Documents[rawdata.KindFixtureInfo] = fixtureRaw

	eventURN := eventURNPrefix + ref.MatchID
	requests := []struct {
		kind  string
		path  string
		query url.Values
	}{
		{
			kind:  rawdata.KindMatchStats,
			path:  "/match-stats",
			query: url.Values{"globalContainerPolling": {"true"}, "urn": {eventURN}},
		},
		{
			kind: rawdata.KindMatchInfo,
			path: "/live-header",
			query: url.Values{
				"assetId":                  {ref.ResourceID},
				"endDateTime":              {gameDate},
				"globalContainerPolling":   {"true"},
				"isInternational":          {"true"},
				"liveExperienceCrowdCount": {"true"},
				"showMSI":                  {"false"},
				"showMedia":                {"true"},
				"sportDataEventUrn":        {eventURN},
				"sportDiscipline":          {"football"},
				"startDateTime":            {gameDate},
				"uasEnv":                   {"live"},
			},
		},
		{
			kind:  rawdata.KindLineups,
			path:  "/match-lineups",
			query: url.Values{"globalContainerPolling": {"true"}, "urn": {eventURN}},
		},
		{
			kind:  rawdata.KindTable,
			path:  "/football-table",
			query: url.Values{"globalContainerPolling": {"true"}, "matchDate": {gameDate}, "matchUrn": {eventURN}},
		},
		{
			kind:  rawdata.KindSamedayFixtures,
			path:  "/football-on-the-day-events",
			query: url.Values{"globalContainerPolling": {"true"}, "matchUrn": {eventURN}},
		},
	}

	for _, item := range requests {
		raw, err := c.get(ctx, c.baseURL+item.path, item.query)
		if err != nil {
			if ctx.Err() != nil {
				return Matchday{}, ctx.Err()
			}
			c.logger.WarnContext(ctx, "fetch document failed, continuing without it",
				"game_date", gameDate,
				"kind", item.kind,
				"error", err,
			)
			continue
		}
		out.Documents[item.kind] = raw
	}

	commentary, err := c.FetchCommentary(ctx, ref.MatchID)
	if err != nil {
		if ctx.Err() != nil {
			return Matchday{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fetch commentary failed, continuing without it",
			"game_date", gameDate,
			"error", err,
		)
	} else if commentary != nil {
		out.Documents[rawdata.KindCommentary] = commentary
	}

	return out, nil
}

// FetchCommentary walks the live text stream page by page and returns the
// pages as one JSON array. It returns nil when the stream does not exist.
func (c *Client) FetchCommentary(ctx context.Context, matchID string) ([]byte, error) {
	first, err := c.get(ctx, c.commentaryBaseURL, c.commentaryQuery(matchID, 1))
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch commentary page=1 match_id=%s", matchID)
	}

	var page CommentaryPage
	if err := sonic.Unmarshal(first, &page); err != nil {
		return nil, crerr.Wrap(err, "decode commentary page=1")
	}
	if page.Error != nil {
		c.logger.InfoContext(ctx, "no commentary stream for match", "match_id", matchID)
		return nil, nil
	}

	pages := [][]byte{first}
	for pageNo := 2; pageNo <= page.Page.Total.Int(); pageNo++ {
		raw, err := c.get(ctx, c.commentaryBaseURL, c.commentaryQuery(matchID, pageNo))
		if err != nil {
			return nil, crerr.Wrapf(err, "fetch commentary page=%d match_id=%s", pageNo, matchID)
		}
		pages = append(pages, raw)
	}

	return joinJSONArray(pages), nil
}

func (c *Client) commentaryQuery(matchID string, pageNo int) url.Values {
	return url.Values{
		"globalContainerPolling": {"true"},
		"liveTextStreamId":       {matchID},
		"pageNumber":             {strconv.Itoa(pageNo)},
		"pageSize":               {strconv.Itoa(commentaryPageSize)},
		"pageUrl":                {commentaryPageURL},
		"type":                   {"football"},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "feed circuit breaker rejected request", "state", c.breaker.State())
			return nil, crerr.WithStack(ErrUnavailable)
		}
	}

	fullURL := endpoint
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errFeedTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.do(fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errFeedTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("feed status=%d body=%s", status, abbreviateBody(raw)), errFeedTransient)
		default:
			return nil, crerr.Newf("feed status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("feed request failed")
	}
	c.logger.WarnContext(ctx, "feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}

	// resp is recycled on return, so the body has to be copied out.
	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

func joinJSONArray(items [][]byte) []byte {
	size := 2
	for _, item := range items {
		size += len(item) + 1
	}
	out := make([]byte, 0, size)
	out = append(out, '[')
	for i, item := range items {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, item...)
	}
	out = append(out, ']')
	return out
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func trimBaseURL(value, fallback string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(value), "/")
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
