// Package scrape fetches course blocks from the upstream catalog site.
package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/gradeview/gradeview-api/pkg/config"
)

// ErrNoCourseBlock means the upstream response did not contain a parseable
// course block fragment.
var ErrNoCourseBlock = errors.New("scrape: no course block in upstream response")

// The catalog endpoint returns the course block as HTML embedded in an XML
// wrapper; the first greedy div match is the fragment of interest.
var courseBlockPattern = regexp.MustCompile(`(?s)<div.+</div>`)

// Client fetches raw course blocks from the catalog. It performs exactly one
// request per lookup; failures are never retried.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient builds a catalog client with a browser-like identity, which the
// catalog endpoint requires.
func NewClient(cfg config.CatalogConfig) *Client {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:86.0) Gecko/20100101 Firefox/86.0")
	client.SetHeader("Accept", "*/*")
	client.SetHeader("Accept-Language", "en-US,en;q=0.5")
	client.SetHeader("X-Requested-With", "XMLHttpRequest")
	client.SetHeader("Referer", cfg.Referrer)

	return &Client{http: client, baseURL: cfg.BaseURL}
}

// FetchCourseBlock retrieves the catalog entry for one course and returns
// the title line and description text of its course block.
func (c *Client) FetchCourseBlock(ctx context.Context, subjectCode, courseNumber string) (string, string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", "getcourse.rjs").
		SetQueryParam("code", fmt.Sprintf("%s %s", subjectCode, courseNumber)).
		Get(c.baseURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch catalog page: %w", err)
	}

	fragment := courseBlockPattern.Find(res.Body())
	if fragment == nil {
		return "", "", ErrNoCourseBlock
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(fragment))
	if err != nil {
		return "", "", fmt.Errorf("parse course block: %w", err)
	}

	title := doc.Find(".courseblocktitle")
	desc := doc.Find(".courseblockdesc")
	if title.Length() == 0 || desc.Length() == 0 {
		return "", "", ErrNoCourseBlock
	}

	return title.Text(), desc.Text(), nil
}
