// Package render prints recommended outfits for terminal users, applying the
// same per-item image fallback a browser would.
package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"arbotique/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const checkConcurrency = 8

// ImageChecker reports whether an image URL can be loaded.
type ImageChecker interface {
	Check(ctx context.Context, url string) error
}

type HTTPChecker struct {
	client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{client: &http.Client{Timeout: timeout}}
}

// Check issues a HEAD request; transport errors and 4xx/5xx count as a failed load.
func (p *HTTPChecker) Check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create image request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("image %s returned status %d", url, resp.StatusCode)
	}
	return nil
}

// NoopChecker accepts every URL.
type NoopChecker struct{}

func (NoopChecker) Check(context.Context, string) error { return nil }

type Renderer struct {
	checker ImageChecker
	logger  *zap.Logger
}

func NewRenderer(checker ImageChecker, logger *zap.Logger) *Renderer {
	return &Renderer{checker: checker, logger: logger}
}

// ResolveImages checks every item image and swaps failures for the
// type placeholder. Items are updated in place.
func (r *Renderer) ResolveImages(ctx context.Context, outfits []dto.RenderableOutfit) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)

	for i := range outfits {
		for j := range outfits[i].Items {
			item := &outfits[i].Items[j]
			if item.ImageFailed {
				continue
			}
			g.Go(func() error {
				if err := r.checker.Check(gctx, item.ImageURL); err != nil {
					r.logger.Debug("Item image unavailable, using placeholder",
						zap.String("item_id", item.ID),
						zap.String("type", string(item.Type)),
						zap.Error(err),
					)
					item.MarkImageFailed()
				}
				return nil
			})
		}
	}
	_ = g.Wait()
}

// Render resolves images and writes one table per outfit.
func (r *Renderer) Render(ctx context.Context, w io.Writer, outfits []dto.RenderableOutfit) error {
	r.ResolveImages(ctx, outfits)

	if len(outfits) == 0 {
		_, err := fmt.Fprintln(w, "No outfits matched your preferences.")
		return err
	}

	for i, o := range outfits {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  (%s, %s)  total %d\n%s\n", o.Name, o.Style, o.ColorScheme, o.TotalPrice, o.Description); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tITEM\tBRAND\tPRICE\tIMAGE")
		for _, item := range o.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", item.Type, item.Name, item.Brand, item.Price, item.ImageURL)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
