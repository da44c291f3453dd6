package service

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ioe2040/supporter-wall-go/internal/domain"
	"github.com/ioe2040/supporter-wall-go/internal/util"
)

// Each partner entry on the supporters page is anchored by an h3 heading,
// but no semantic container wraps the entry: the logo sits somewhere above
// the heading, and link and "Branche: ..." text follow it in loose markup.
// The extractor therefore flattens the document into a node list in document
// order and resolves every field by scanning from the heading's index.

// industryPattern captures the value after a "Branche:" label. The value
// ends at the first embedded URL or at end of text, never only at end of
// text, so a trailing link does not leak into the industry field.
var industryPattern = regexp.MustCompile(`(?i)\bBranche\s*:\s*(.+?)(?:\shttps?://|$)`)

type ExtractorService struct {
	baseURL    *url.URL
	skipTitles []string
	logger     *zap.Logger
}

func NewExtractorService(baseURL string, skipTitles []string, logger *zap.Logger) (*ExtractorService, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &ExtractorService{
		baseURL:    base,
		skipTitles: skipTitles,
		logger:     logger,
	}, nil
}

// Extract parses the page markup and returns the deduplicated supporter
// entries, sorted ascending by their normalized sort key.
func (s *ExtractorService) Extract(pageHTML string) ([]domain.Supporter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("HTML parse failed: %w", err)
	}

	nodes, anchors := flattenDocument(doc)
	if len(anchors) == 0 {
		return nil, &StructureChangedError{
			Message: "no h3 headings found - HTML structure may have changed",
		}
	}

	entries := make([]domain.Supporter, 0, len(anchors))
	for _, idx := range anchors {
		name := headingText(nodes[idx])
		if name == "" {
			continue
		}
		if s.isSkipTitle(name) {
			s.logger.Debug("Skipping non-partner heading", zap.String("title", name))
			continue
		}

		logo := s.findLogo(nodes, idx)
		link, blockText := collectRegion(nodes, idx)
		industry := parseIndustry(blockText)

		entry := domain.Supporter{
			Name:     name,
			Industry: industry,
			Link:     link,
			Logo:     logo,
			SortKey:  domain.SortKey(name),
		}
		if !entry.Qualifies() {
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, &StructureChangedError{
			Message: "no qualifying entries found - HTML structure may have changed",
			Anchors: len(anchors),
		}
	}

	unique := dedupe(entries)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].SortKey < unique[j].SortKey
	})

	s.logger.Info("Extraction finished",
		zap.Int("anchors", len(anchors)),
		zap.Int("accepted", len(entries)),
		zap.Int("unique", len(unique)))

	return unique, nil
}

// flattenDocument lists every node in document order and records the index
// of each h3 element. Neighbor scans become plain index walks over the slice.
func flattenDocument(doc *goquery.Document) ([]*html.Node, []int) {
	var nodes []*html.Node
	var anchors []int

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		nodes = append(nodes, n)
		if isElement(n, "h3") {
			anchors = append(anchors, len(nodes)-1)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return nodes, anchors
}

// headingText joins the heading's descendant text fragments with single
// spaces, normalizing non-breaking spaces.
func headingText(h *html.Node) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(h)

	return util.CollapseWhitespace(util.NormalizeText(strings.Join(parts, " ")))
}

func (s *ExtractorService) isSkipTitle(name string) bool {
	for _, title := range s.skipTitles {
		if strings.EqualFold(name, title) {
			return true
		}
	}
	return false
}

// findLogo resolves the entry's logo. The page convention is that a logo
// always sits above the heading it labels, so walk backward in document
// order and stop at the previous h3 - a logo must never be attributed to the
// wrong entry.
func (s *ExtractorService) findLogo(nodes []*html.Node, anchor int) string {
	for i := anchor - 1; i >= 0; i-- {
		n := nodes[i]
		if isElement(n, "h3") {
			return ""
		}
		if isElement(n, "img") {
			if src := strings.TrimSpace(attrValue(n, "src")); src != "" {
				if resolved := s.resolveURL(src); resolved != "" {
					return resolved
				}
			}
		}
	}
	return ""
}

// collectRegion walks forward from the anchor until the next h3, recording
// the first external link and every text fragment on the way. The anchor's
// own subtree is part of the region, matching the page's reading order.
func collectRegion(nodes []*html.Node, anchor int) (link, blockText string) {
	var texts []string

	for i := anchor + 1; i < len(nodes); i++ {
		n := nodes[i]
		if isElement(n, "h3") {
			break
		}

		if link == "" && isElement(n, "a") {
			href := strings.TrimSpace(attrValue(n, "href"))
			if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
				link = href
			}
		}

		if n.Type == html.TextNode {
			if t := util.NormalizeText(n.Data); t != "" {
				texts = append(texts, t)
			}
		}
	}

	return link, util.CollapseWhitespace(strings.Join(texts, " "))
}

func parseIndustry(blockText string) string {
	m := industryPattern.FindStringSubmatch(blockText)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// dedupe keeps the first occurrence per (name, link, logo) tuple, preserving
// the original order.
func dedupe(entries []domain.Supporter) []domain.Supporter {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]domain.Supporter, 0, len(entries))
	for _, e := range entries {
		key := e.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

func (s *ExtractorService) resolveURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return s.baseURL.ResolveReference(u).String()
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

type StructureChangedError struct {
	Message string
	Anchors int
}

func (e *StructureChangedError) Error() string {
	return fmt.Sprintf("%s (anchors: %d)", e.Message, e.Anchors)
}

func IsStructureError(err error) bool {
	_, ok := err.(*StructureChangedError)
	return ok
}
