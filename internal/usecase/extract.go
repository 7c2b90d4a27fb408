package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zathu/shopscrape/internal/adapter/renderer"
	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/worker"
)

// Selectors for the product page layout the service targets.
const (
	titleSelector = "h1"
	priceSelector = ".product-intro__head-price .original"
	imageSelector = ".item-container img"
)

// ExtractUseCase renders product pages and pulls structured fields out of them.
type ExtractUseCase struct {
	engine renderer.Engine
	pool   *worker.ExtractPool
	logger *slog.Logger
}

// NewExtractUseCase constructs ExtractUseCase.
func NewExtractUseCase(engine renderer.Engine, pool *worker.ExtractPool, logger *slog.Logger) *ExtractUseCase {
	return &ExtractUseCase{engine: engine, pool: pool, logger: logger}
}

// Extract fetches every reference and returns the extracted products in input
// order. rate is applied as-is to every item; the caller captures it once so a
// concurrent rate update never splits a batch. A reference that fails to
// render is logged and skipped, a failure to open the browser fails the whole
// call. All rendering sessions are released before Extract returns.
func (u *ExtractUseCase) Extract(ctx context.Context, refs []string, rate float64) ([]model.Product, error) {
	if len(refs) == 0 {
		return nil, domainErrors.ErrNoReferences
	}

	workers := u.pool.Workers()
	if workers > len(refs) {
		workers = len(refs)
	}

	sessions := make([]renderer.Session, 0, workers)
	defer func() {
		for _, s := range sessions {
			s.Close()
		}
	}()

	for i := 0; i < workers; i++ {
		session, err := u.engine.NewSession(ctx)
		if err != nil {
			return nil, fmt.Errorf("open render session: %w", err)
		}
		sessions = append(sessions, session)
	}

	products := u.pool.Run(ctx, refs, func(ctx context.Context, workerID int, ref string) (*model.Product, error) {
		session := sessions[workerID%len(sessions)]
		html, err := session.HTML(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrRenderFailed, err)
		}
		product, err := extractProduct(html)
		if err != nil {
			return nil, err
		}
		product.SourceURL = ref
		product.PriceMWK = product.PriceUSD * rate
		return product, nil
	})

	return products, nil
}

func extractProduct(html string) (*model.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	title := strings.TrimSpace(doc.Find(titleSelector).First().Text())
	if title == "" {
		title = model.NoTitleSentinel
	}

	priceText := strings.TrimSpace(doc.Find(priceSelector).First().Text())
	if priceText == "" {
		priceText = "0"
	}

	image := strings.TrimSpace(doc.Find(imageSelector).First().AttrOr("src", ""))

	priceUSD, parsed := ParsePrice(priceText)

	return &model.Product{
		Title:         title,
		PriceText:     priceText,
		PriceUSD:      priceUSD,
		Image:         image,
		PriceUnparsed: !parsed,
	}, nil
}
