package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ImageScraper resolves a product image from an arbitrary page URL for the
// admin form: paste a supplier or social link, get the og:image back.
type ImageScraper struct {
	client *http.Client
}

func NewImageScraper() *ImageScraper {
	return &ImageScraper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// LookupImage fetches the page and extracts the best candidate image:
// og:image first, then twitter:image, then the first sizable <img>.
func (s *ImageScraper) LookupImage(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("url inválida: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; cartaviva/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("descargar página: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("descargar página: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsear html: %w", err)
	}

	for _, sel := range []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && content != "" {
			return s.absolute(u, content), nil
		}
	}

	var found string
	doc.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		found = s.absolute(u, src)
		return false
	})
	if found == "" {
		return "", fmt.Errorf("sin imágenes en %s", u.Host)
	}
	log.Debug().Str("url", pageURL).Str("image", found).Msg("imagen encontrada por fallback <img>")
	return found, nil
}

func (s *ImageScraper) absolute(page *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return page.ResolveReference(u).String()
}
