package constants

import "time"

var Scraper = struct {
	SourceURL string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}{
	SourceURL: "https://www.initiativeoesterreich2040.at/unsere-unterstuetzer",
	BaseURL:   "https://www.initiativeoesterreich2040.at",
	UserAgent: "Mozilla/5.0 (supporter-scraper; +github-actions)",
	Timeout:   30 * time.Second,
}

var Guard = struct {
	MinSupporters          int
	MissingIndustryPreview int
}{
	MinSupporters:          10, // fewer extracted entries than this aborts the run
	MissingIndustryPreview: 10,
}

var Output = struct {
	File string
}{
	File: "dist/index.html",
}

// SkipTitles are headings that share the partner entries' markup shape but
// are not partners. Matched case-insensitively against the trimmed heading
// text.
var SkipTitles = []string{
	"KONTAKTIEREN SIE UNS WENN SIE UNTERSTÜTZER WERDEN WOLLEN",
	"ÜBER INITIATIVE ÖSTERREICH 2040",
}
