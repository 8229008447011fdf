package mensa

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// assembleDish builds one Dish from a dish cell (td.menue-wrapper).
// Recoverable problems (bad price text, unknown flags, unparsable
// nutrition fields) degrade the affected field to absent and are
// returned as warnings. A dish whose components cannot be determined,
// or that fails record validation, is skipped: ok is false and a
// warning explains why.
func assembleDish(wrapper *goquery.Selection) (Dish, []Warning, bool) {
	var warnings []Warning

	category := cleanText(wrapper.Find(".menue-category").First().Text())

	desc := wrapper.Find(".expand-nutr").First()
	if desc.Length() == 0 {
		warnings = append(warnings, Warning{
			Kind:   WarnSkippedDish,
			Raw:    cleanText(wrapper.Text()),
			Detail: "no dish description found",
		})
		return Dish{}, warnings, false
	}

	components, compWarnings := extractComponents(desc)
	warnings = append(warnings, compWarnings...)
	if len(components) == 0 {
		warnings = append(warnings, Warning{
			Kind:   WarnSkippedDish,
			Raw:    cleanText(wrapper.Text()),
			Detail: "dish has no components",
		})
		return Dish{}, warnings, false
	}

	// The classification classes sit on the dish row, one level above
	// the wrapper cell.
	classAttr, _ := wrapper.Parent().Attr("class")
	meat := meatTypesFromClasses(classAttr)

	priceText := wrapper.Find(".menue-price").First().Text()
	price, err := ParsePrice(priceText)
	if err != nil {
		warnings = append(warnings, Warning{
			Kind: WarnMalformedPrice,
			Raw:  cleanText(priceText),
		})
		price = nil
	}

	nutrition, nutrWarnings := parseNutrition(wrapper.Find(".nutr-info").First().Text())
	warnings = append(warnings, nutrWarnings...)

	dish := Dish{
		Category:  category,
		Main:      components[0],
		Aux:       components[1:],
		Meat:      meat,
		Price:     price,
		Nutrition: nutrition,
	}

	if err := validate.Struct(dish); err != nil {
		warnings = append(warnings, Warning{
			Kind:   WarnInvalidDish,
			Raw:    cleanText(wrapper.Text()),
			Detail: err.Error(),
		})
		return Dish{}, warnings, false
	}

	return dish, warnings, true
}
