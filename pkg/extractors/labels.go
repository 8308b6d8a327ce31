package extractors

// labelDescriptions maps entity type labels to the human-readable
// descriptions used by the underlying English NER model. The label
// vocabulary is open; anything not listed here is still a valid label,
// it just has no description.
var labelDescriptions = map[string]string{
	"PERSON":      "People, including fictional",
	"NORP":        "Nationalities or religious or political groups",
	"FAC":         "Buildings, airports, highways, bridges, etc.",
	"ORG":         "Companies, agencies, institutions, etc.",
	"GPE":         "Countries, cities, states",
	"LOC":         "Non-GPE locations, mountain ranges, bodies of water",
	"PRODUCT":     "Objects, vehicles, foods, etc. (not services)",
	"EVENT":       "Named hurricanes, battles, wars, sports events, etc.",
	"WORK_OF_ART": "Titles of books, songs, etc.",
	"LAW":         "Named documents made into laws.",
	"LANGUAGE":    "Any named language",
	"DATE":        "Absolute or relative dates or periods",
	"TIME":        "Times smaller than a day",
	"PERCENT":     "Percentage, including \"%\"",
	"MONEY":       "Monetary values, including unit",
	"QUANTITY":    "Measurements, as of weight or distance",
	"ORDINAL":     "\"first\", \"second\", etc.",
	"CARDINAL":    "Numerals that do not fall under another type",
}

// DescribeLabel returns the human-readable description for a label. The
// second return is false for labels outside the catalog; callers must treat
// that as "no description", never as an error.
func DescribeLabel(label string) (string, bool) {
	description, ok := labelDescriptions[label]
	return description, ok
}
