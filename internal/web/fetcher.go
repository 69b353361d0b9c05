package web

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// maxBodyBytes bounds how much of a page is read; everything downstream
// assumes in-memory content.
const maxBodyBytes = 2 << 20

// PageFetcher downloads a webpage and reduces it to title plus visible text.
type PageFetcher struct {
	client HTTPClient
}

// NewPageFetcher creates a new page fetcher backed by the given client.
func NewPageFetcher(client HTTPClient) *PageFetcher {
	return &PageFetcher{client: client}
}

// Fetch downloads the URL and extracts its title and visible text. The URL
// must be public http(s); loopback, private and link-local hosts are
// rejected before any request is made.
func (f *PageFetcher) Fetch(rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if err := validateTarget(u); err != nil {
		return nil, err
	}

	slog.Debug("fetching page", "url", u.String())
	resp, err := f.client.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	title, text := extractText(body)
	return &Page{URL: u.String(), Title: title, Text: text}, nil
}

// validateTarget rejects URLs that could reach internal services.
func validateTarget(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("URL has no host: %s", u)
	}
	if strings.EqualFold(host, "localhost") {
		return fmt.Errorf("refusing to fetch local address: %s", host)
	}
	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return fmt.Errorf("refusing to fetch non-public address: %s", host)
		}
	}
	return nil
}

// extractText pulls the document title and the visible text out of HTML,
// skipping script, style and noscript bodies and collapsing whitespace.
func extractText(body []byte) (title, text string) {
	z := html.NewTokenizer(bytes.NewReader(body))
	var sb strings.Builder
	var inTitle bool
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return title, strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				skip++
			case "title":
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				if skip > 0 {
					skip--
				}
			case "title":
				inTitle = false
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			t := string(z.Text())
			if inTitle && title == "" {
				title = strings.TrimSpace(t)
				continue
			}
			sb.WriteString(t)
			sb.WriteByte(' ')
		}
	}
}
