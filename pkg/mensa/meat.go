package mensa

import "strings"

// MeatType classifies a dish with respect to contained meat / diet.
type MeatType string

const (
	Vegan      MeatType = "vegan"
	Vegetarian MeatType = "vegetarian"
	Poultry    MeatType = "poultry"
	Fish       MeatType = "fish"
	Meat       MeatType = "meat"
	Beef       MeatType = "beef"
	Pork       MeatType = "pork"
)

// The provider marks a dish's classification via CSS classes on the
// dish row. Order matters for deterministic output.
var meatTypeClasses = []struct {
	class string
	meat  MeatType
}{
	{"vegan", Vegan},
	{"OLV", Vegetarian},
	{"Geflügel", Poultry},
	{"Fisch", Fish},
	{"Fleisch", Meat},
	{"Rind", Beef},
	{"Schwein", Pork},
}

// meatTypesFromClasses derives the classification set from a dish
// row's class attribute. Classes not in the table are ignored; an
// unclassified dish yields an empty set, which is valid.
func meatTypesFromClasses(classAttr string) []MeatType {
	classes := strings.Fields(classAttr)
	var meats []MeatType
	for _, entry := range meatTypeClasses {
		for _, cl := range classes {
			if cl == entry.class {
				meats = append(meats, entry.meat)
				break
			}
		}
	}
	return meats
}
