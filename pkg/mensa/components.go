package mensa

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// extractComponents splits the contents of a dish description cell
// (span.expand-nutr) into named components with their flags.
//
// The markup interleaves text and footnotes: text nodes carry the
// component titles, separated by "|", and each <sup> element carries
// the comma-separated flag abbreviations of the component opened by
// the preceding text. A component without markers simply has no <sup>
// following it. The expand button (class menue-nutr) and the literal
// "Preis ohne Pfand" annotation are markup noise, not components.
//
// The first component is the dish's main component; the rest are
// auxiliary. Unresolvable flag abbreviations are dropped from the
// component and reported as warnings.
func extractComponents(sel *goquery.Selection) ([]Component, []Warning) {
	var components []Component
	var warnings []Warning
	var current *Component

	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		switch node.Type {
		case html.TextNode:
			for _, title := range strings.Split(node.Data, "|") {
				title = cleanText(title)
				if title == "" {
					continue
				}
				if current != nil {
					components = append(components, *current)
				}
				current = &Component{Title: title}
			}

		case html.ElementNode:
			if s.HasClass("menue-nutr") {
				// Expand/"+" button.
				return
			}
			if node.Data != "sup" {
				return
			}
			text := cleanText(s.Text())
			if text == "Preis ohne Pfand" {
				return
			}
			if current == nil {
				return
			}
			for _, abbr := range strings.Split(text, ",") {
				abbr = strings.TrimSpace(abbr)
				if abbr == "" {
					continue
				}
				flag, err := ResolveFlag(abbr)
				if err != nil {
					warnings = append(warnings, Warning{
						Kind: WarnUnknownFlagCode,
						Raw:  abbr,
					})
					continue
				}
				current.Flags = append(current.Flags, flag)
			}
		}
	})

	if current != nil {
		components = append(components, *current)
	}
	return components, warnings
}
