package mensa

// Flag is one allergen or additive marker. Its value is the
// abbreviation printed as a footnote next to a component's title
// ("A3", "H", "2", ...). The abbreviation vocabulary is curated by the
// provider; this table is the single point of update when the website
// adds a code.
type Flag string

const (
	FlagFarbstoff             Flag = "1"
	FlagKonservierungsstoff   Flag = "2"
	FlagAntioxidationsmittel  Flag = "3"
	FlagGeschmacksverstaerker Flag = "4"
	FlagGeschwefelt           Flag = "5"
	FlagGeschwaerzt           Flag = "6"
	FlagGewachst              Flag = "7"
	FlagPhosphat              Flag = "8"
	FlagSuessungsmittel       Flag = "9"
	FlagPhenylalaninquelle    Flag = "10"
	FlagGluten                Flag = "A"
	FlagWeizen                Flag = "A1"
	FlagRoggen                Flag = "A2"
	FlagGerste                Flag = "A3"
	FlagHafer                 Flag = "A4"
	FlagDinkel                Flag = "A5"
	FlagSellerie              Flag = "B"
	FlagKrebstiere            Flag = "C"
	FlagEier                  Flag = "D"
	FlagFische                Flag = "E"
	FlagErdnuesse             Flag = "F"
	FlagSojabohnen            Flag = "G"
	FlagMilch                 Flag = "H"
	FlagSchalenfruechte       Flag = "I"
	FlagMandeln               Flag = "I1"
	FlagHaselnuesse           Flag = "I2"
	FlagWalnuesse             Flag = "I3"
	FlagKaschunuesse          Flag = "I4"
	FlagPecannuesse           Flag = "I5"
	FlagParanuesse            Flag = "I6"
	FlagPistazien             Flag = "I7"
	FlagMacadamianuesse       Flag = "I8"
	FlagSenf                  Flag = "J"
	FlagSesamsamen            Flag = "K"
	FlagSulfite               Flag = "L"
	FlagLupinen               Flag = "M"
	FlagWeichtiere            Flag = "N"
)

// flagNames maps each abbreviation to the provider's canonical name.
// Abbreviations are unique; the map doubles as the known-code set.
var flagNames = map[Flag]string{
	FlagFarbstoff:             "Farbstoff",
	FlagKonservierungsstoff:   "Konservierungsstoff",
	FlagAntioxidationsmittel:  "Antioxidationsmittel",
	FlagGeschmacksverstaerker: "Geschmacksverstärker",
	FlagGeschwefelt:           "geschwefelt",
	FlagGeschwaerzt:           "geschwärzt",
	FlagGewachst:              "gewachst",
	FlagPhosphat:              "Phosphat",
	FlagSuessungsmittel:       "Süßungsmittel",
	FlagPhenylalaninquelle:    "Phenylalaninquelle",
	FlagGluten:                "Gluten",
	FlagWeizen:                "Weizen",
	FlagRoggen:                "Roggen",
	FlagGerste:                "Gerste",
	FlagHafer:                 "Hafer",
	FlagDinkel:                "Dinkel",
	FlagSellerie:              "Sellerie",
	FlagKrebstiere:            "Krebstiere",
	FlagEier:                  "Eier",
	FlagFische:                "Fische",
	FlagErdnuesse:             "Erdnüsse",
	FlagSojabohnen:            "Sojabohnen",
	FlagMilch:                 "Milch",
	FlagSchalenfruechte:       "Schalenfrüchte",
	FlagMandeln:               "Mandeln",
	FlagHaselnuesse:           "Haselnüsse",
	FlagWalnuesse:             "Walnüsse",
	FlagKaschunuesse:          "Kaschunüsse",
	FlagPecannuesse:           "Pecannüsse",
	FlagParanuesse:            "Paranüsse",
	FlagPistazien:             "Pistazien",
	FlagMacadamianuesse:       "Macadamianüsse",
	FlagSenf:                  "Senf",
	FlagSesamsamen:            "Sesamsamen",
	FlagSulfite:               "Schwefeldioxid oder Sulfite",
	FlagLupinen:               "Lupinen",
	FlagWeichtiere:            "Weichtiere",
}

// Flags lists every registered flag in abbreviation order.
func Flags() []Flag {
	return []Flag{
		FlagFarbstoff, FlagKonservierungsstoff, FlagAntioxidationsmittel,
		FlagGeschmacksverstaerker, FlagGeschwefelt, FlagGeschwaerzt,
		FlagGewachst, FlagPhosphat, FlagSuessungsmittel, FlagPhenylalaninquelle,
		FlagGluten, FlagWeizen, FlagRoggen, FlagGerste, FlagHafer, FlagDinkel,
		FlagSellerie, FlagKrebstiere, FlagEier, FlagFische, FlagErdnuesse,
		FlagSojabohnen, FlagMilch, FlagSchalenfruechte, FlagMandeln,
		FlagHaselnuesse, FlagWalnuesse, FlagKaschunuesse, FlagPecannuesse,
		FlagParanuesse, FlagPistazien, FlagMacadamianuesse, FlagSenf,
		FlagSesamsamen, FlagSulfite, FlagLupinen, FlagWeichtiere,
	}
}

// ResolveFlag looks up a footnote abbreviation. Lookup is
// case-sensitive; an unknown abbreviation returns *UnknownFlagError so
// the caller can decide whether to skip, warn or abort.
func ResolveFlag(abbr string) (Flag, error) {
	f := Flag(abbr)
	if _, ok := flagNames[f]; !ok {
		return "", &UnknownFlagError{Code: abbr}
	}
	return f, nil
}

// Abbreviation returns the wire form of the flag.
func (f Flag) Abbreviation() string {
	return string(f)
}

// Name returns the canonical German name of the allergen/additive, or
// "" for a value outside the registry.
func (f Flag) Name() string {
	return flagNames[f]
}
