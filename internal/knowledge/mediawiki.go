package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const (
	defaultLanguage = "en"
	apiURLFormat    = "https://%s.wikipedia.org/w/api.php"
	defaultTimeout  = 8 * time.Second
)

// MediaWiki summarizes topics through the MediaWiki Action API. The topic is
// resolved with a search, like an auto-suggest, and disambiguation pages are
// reported as *AmbiguousError.
type MediaWiki struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    zerolog.Logger
}

// MediaWikiOption configures a MediaWiki client.
type MediaWikiOption func(*MediaWiki)

// WithBaseURL overrides the api.php endpoint.
func WithBaseURL(u string) MediaWikiOption {
	return func(m *MediaWiki) {
		if u != "" {
			m.baseURL = u
		}
	}
}

// WithLanguage selects the Wikipedia language edition.
func WithLanguage(code string) MediaWikiOption {
	return func(m *MediaWiki) {
		if code != "" {
			m.baseURL = fmt.Sprintf(apiURLFormat, code)
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) MediaWikiOption {
	return func(m *MediaWiki) {
		m.client = hc
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) MediaWikiOption {
	return func(m *MediaWiki) {
		m.logger = l
	}
}

func NewMediaWiki(userAgent string, opts ...MediaWikiOption) *MediaWiki {
	m := &MediaWiki{
		baseURL:   fmt.Sprintf(apiURLFormat, defaultLanguage),
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type page struct {
	Title     string            `json:"title"`
	Missing   bool              `json:"missing"`
	Invalid   bool              `json:"invalid"`
	Extract   string            `json:"extract"`
	PageProps map[string]string `json:"pageprops"`
	Revisions []struct {
		Slots struct {
			Main struct {
				Content string `json:"content"`
			} `json:"main"`
		} `json:"slots"`
	} `json:"revisions"`
}

type pagesResponse struct {
	Query struct {
		Pages []page `json:"pages"`
	} `json:"query"`
}

// Summarize implements assistant.Knowledge.
func (m *MediaWiki) Summarize(ctx context.Context, topic string, sentences int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrNotFound
	}

	title, err := m.search(ctx, topic)
	if err != nil {
		return "", err
	}

	p, err := m.page(ctx, url.Values{
		"prop":        {"extracts|pageprops"},
		"ppprop":      {"disambiguation"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"exsentences": {strconv.Itoa(sentences)},
		"titles":      {title},
	})
	if err != nil {
		return "", err
	}

	if _, ok := p.PageProps["disambiguation"]; ok {
		options, err := m.entries(ctx, p.Title)
		if err != nil {
			return "", err
		}
		m.logger.Debug().Str("topic", topic).Int("options", len(options)).Msg("ambiguous topic")
		return "", &AmbiguousError{Topic: topic, Options: options}
	}

	// exsentences already bounds the extract.
	summary := strings.TrimSpace(p.Extract)
	if summary == "" {
		return "", ErrNotFound
	}
	return summary, nil
}

func (m *MediaWiki) search(ctx context.Context, topic string) (string, error) {
	var res searchResponse
	err := m.get(ctx, url.Values{
		"list":     {"search"},
		"srsearch": {topic},
		"srlimit":  {"1"},
	}, &res)
	if err != nil {
		return "", err
	}
	if len(res.Query.Search) == 0 {
		return "", ErrNotFound
	}
	return res.Query.Search[0].Title, nil
}

// entries returns the first article link of every list item on a
// disambiguation page, in page order.
func (m *MediaWiki) entries(ctx context.Context, title string) ([]string, error) {
	p, err := m.page(ctx, url.Values{
		"prop":    {"revisions"},
		"rvprop":  {"content"},
		"rvslots": {"main"},
		"titles":  {title},
	})
	if err != nil {
		return nil, err
	}
	if len(p.Revisions) == 0 {
		return nil, nil
	}
	return ListEntries(p.Revisions[0].Slots.Main.Content), nil
}

var wikiLink = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|[^\[\]]*)?\]\]`)

// Namespaces whose links are never disambiguation entries.
var skippedNamespaces = []string{"file:", "image:", "category:", "wikt:", "wiktionary:", "help:", "special:"}

// ListEntries extracts the first article link of every bulleted or numbered
// line of wikitext. Duplicates are dropped.
func ListEntries(wikitext string) []string {
	var out []string
	seen := map[string]bool{}

	for _, line := range strings.Split(wikitext, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "#") {
			continue
		}

		for _, match := range wikiLink.FindAllStringSubmatch(line, -1) {
			title, ok := articleTitle(match[1])
			if !ok {
				continue
			}
			if !seen[title] {
				seen[title] = true
				out = append(out, title)
			}
			break
		}
	}
	return out
}

// articleTitle normalizes a link target the way MediaWiki titles pages.
func articleTitle(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	target = strings.TrimSpace(strings.ReplaceAll(target, "_", " "))
	if target == "" {
		return "", false
	}

	lower := strings.ToLower(strings.TrimPrefix(target, ":"))
	for _, ns := range skippedNamespaces {
		if strings.HasPrefix(lower, ns) {
			return "", false
		}
	}

	r, size := utf8.DecodeRuneInString(target)
	return string(unicode.ToUpper(r)) + target[size:], true
}

func (m *MediaWiki) page(ctx context.Context, params url.Values) (page, error) {
	params.Set("redirects", "1")

	var res pagesResponse
	if err := m.get(ctx, params, &res); err != nil {
		return page{}, err
	}
	if len(res.Query.Pages) == 0 {
		return page{}, ErrNotFound
	}

	p := res.Query.Pages[0]
	if p.Missing || p.Invalid {
		return page{}, ErrNotFound
	}
	return p, nil
}

func (m *MediaWiki) get(ctx context.Context, params url.Values, out any) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if m.userAgent != "" {
		req.Header.Set("User-Agent", m.userAgent)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mediawiki request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mediawiki returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode mediawiki response: %w", err)
	}
	return nil
}
