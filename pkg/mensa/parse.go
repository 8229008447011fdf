package mensa

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mensaplan/mensaplan/internal/logger"
)

// weekdayIDs are the element ids the provider uses for day containers,
// in week order.
var weekdayIDs = []string{
	"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
}

// Day headings carry the date as dd.mm.yyyy, e.g. "Montag, 19.08.2026".
var reDate = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

// ParseMenu extracts the weekly menu for one canteen from a menu page.
//
// Fatal conditions (no recognizable subtree for the canteen) return an
// error and no Result. Everything else is best-effort: malformed days
// and dishes are skipped and recorded in Result.Warnings, so callers
// always get every valid part of the document. The extraction is a
// pure function of its inputs and safe for concurrent use.
func ParseMenu(rawHTML string, canteen Canteen) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu document: %w", err)
	}

	root, err := selectCanteenRoot(doc, canteen)
	if err != nil {
		return nil, err
	}

	result := &Result{Days: make(map[time.Time]Menu)}

	dayContainers(root).Each(func(_ int, day *goquery.Selection) {
		id, _ := day.Attr("id")
		label := cleanText(day.Find("h2, h3").First().Text())

		date, ok := parseDateLabel(label)
		if !ok {
			result.addWarning(WarnMalformedDate, label, id)
			logger.Debug("skipping day with malformed date label", "id", id, "label", label)
			return
		}

		menu := Menu{
			Mains: parseSection(day, "table.menues", result),
			Sides: parseSection(day, "table.extras", result),
		}
		skipOrphanDishes(day, result)

		// Duplicate dates should not occur, but the markup does not
		// rule them out: last occurrence wins.
		result.Days[date] = menu
	})

	logger.Debug("menu parsed",
		"canteen", canteen.Slug(),
		"days", len(result.Days),
		"warnings", len(result.Warnings))
	return result, nil
}

// selectCanteenRoot picks the subtree to walk. Combined pages carry
// one container per canteen keyed by slug; the regular weekly pages
// are a single canteen's document, in which case the whole document is
// the subtree.
func selectCanteenRoot(doc *goquery.Document, canteen Canteen) (*goquery.Selection, error) {
	if sub := doc.Find("#" + canteen.Slug()); sub.Length() > 0 {
		return sub.First(), nil
	}

	// A combined page that names other canteens but not this one means
	// the canteen is genuinely absent, not that the whole document is
	// its menu.
	for _, other := range Canteens() {
		if doc.Find("#"+other.Slug()).Length() > 0 {
			return nil, fmt.Errorf("%w: %s", ErrCanteenNotFound, canteen.Slug())
		}
	}

	root := doc.Selection
	if dayContainers(root).Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCanteenNotFound, canteen.Slug())
	}
	return root, nil
}

// dayContainers returns the per-day containers under root in document
// order.
func dayContainers(root *goquery.Selection) *goquery.Selection {
	return root.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		for _, weekday := range weekdayIDs {
			if id == weekday {
				return true
			}
		}
		return false
	})
}

// parseDateLabel extracts the calendar date from a day heading.
func parseDateLabel(label string) (time.Time, bool) {
	m := reDate.FindStringSubmatch(label)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2.1.2006", fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3]))
	if err != nil {
		// Matched digits can still be out of range, e.g. "32.13.2026".
		return time.Time{}, false
	}
	return t, true
}

// parseSection assembles all dishes of one structural section of a day
// container. A missing section is a valid shape (some days publish
// only main dishes) and yields an empty slice without a warning.
func parseSection(day *goquery.Selection, tableSelector string, result *Result) []Dish {
	dishes := []Dish{}
	day.Find(tableSelector + " td.menue-wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		dish, warnings, ok := assembleDish(wrapper)
		result.Warnings = append(result.Warnings, warnings...)
		if ok {
			dishes = append(dishes, dish)
		}
	})
	return dishes
}

// skipOrphanDishes reports dish cells that sit in neither section
// table. Their placement is undefined, so they are skipped rather than
// guessed into a section.
func skipOrphanDishes(day *goquery.Selection, result *Result) {
	day.Find("td.menue-wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		if wrapper.Closest("table.menues, table.extras").Length() > 0 {
			return
		}
		result.addWarning(WarnSkippedDish, cleanText(wrapper.Text()), "dish outside a known menu section")
	})
}
