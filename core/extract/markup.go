// Package extract reads the portal markup with goquery. The weekly pass seeds
// a core.DailyMenuSet for the anchor week; the daily pass overlays each
// date's detail view on top of it.
package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/catalog"
	"github.com/gaurav-prasanna/hyeat/core/metrics"
	"github.com/gaurav-prasanna/hyeat/core/normalize"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Weekly view selectors.
const (
	selAnchor        = ".first-day p"
	selWeekContainer = ".shop-week-container"
	selDaySection    = ".day-container"
	selDayLabel      = ".day span"
)

// Daily view selectors.
const (
	selSlider    = ".today-slider"
	selSliderDay = ".today-date"
	selSlide     = ".swiper-slide"
	selDonation  = ".donation-container"
)

// Item selectors, shared by both views.
const (
	selItem        = ".content-item"
	selCategory    = ".category"
	selDescription = ".content-item-desc p"
	selTitle       = ".content-item-title"
)

// noMenuText marks a day section without any registered menu.
const noMenuText = "등록된 메뉴가 없습니다"

// Config configures an Extractor.
type Config struct {
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	Metrics *metrics.Recorder // optional
}

func (c *Config) defaults() {
	if c.Catalog == nil {
		c.Catalog = catalog.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Extractor runs both extraction passes. It keeps no state between calls.
type Extractor struct {
	catalog *catalog.Catalog
	norm    *normalize.Normalizer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New creates an Extractor.
func New(cfg Config) *Extractor {
	cfg.defaults()
	return &Extractor{
		catalog: cfg.Catalog,
		norm:    normalize.New(cfg.Catalog),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

func parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// fragment reads the category, description and optional title of one item.
func fragment(item *goquery.Selection) (normalize.Fragment, error) {
	category := item.Find(selCategory).First()
	if category.Length() == 0 {
		return normalize.Fragment{}, fmt.Errorf("%w: item without %s", core.ErrShapeMismatch, selCategory)
	}
	desc := item.Find(selDescription).First()
	if desc.Length() == 0 {
		return normalize.Fragment{}, fmt.Errorf("%w: item without %s", core.ErrShapeMismatch, selDescription)
	}
	return normalize.Fragment{
		Category:    text(category),
		Description: text(desc),
		Title:       text(item.Find(selTitle).First()),
	}, nil
}

// blockAtoms separate lines of text; inline elements run together.
var blockAtoms = map[atom.Atom]bool{
	atom.Br: true, atom.P: true, atom.Div: true, atom.Li: true, atom.Ul: true,
	atom.Ol: true, atom.Dl: true, atom.Dt: true, atom.Dd: true, atom.Table: true,
	atom.Tr: true, atom.Td: true, atom.Th: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true, atom.Section: true,
	atom.Article: true, atom.Header: true, atom.Footer: true,
}

// text returns the text under s with whitespace collapsed. <br> and block
// boundaries become a single space; inline markup such as <b> does not.
func text(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if blockAtoms[n.DataAtom] {
				b.WriteByte(' ')
				defer b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
