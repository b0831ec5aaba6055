package usecase

import "strings"

// CategoryHSW is the fixed inventory category for every resolved item in
// this domain (household goods / soft contents).
const CategoryHSW = "HSW"

// DefaultSubcategory is assigned when no classification rule matches
const DefaultSubcategory = "General Merchandise"

// subcategoryRule pairs a keyword set with the label it implies
type subcategoryRule struct {
	label    string
	keywords []string
}

// subcategoryRules is evaluated top to bottom against the winning
// candidate's title; the first rule with any matching keyword wins.
// More specific rules come before broader ones.
var subcategoryRules = []subcategoryRule{
	{"Major Appliances", []string{"refrigerator", "freezer", "dishwasher", "washer", "dryer", "range", "oven", "cooktop"}},
	{"Small Appliances", []string{"blender", "mixer", "toaster", "microwave", "air fryer", "coffee maker", "kettle", "vacuum"}},
	{"Electronics", []string{"tv", "television", "monitor", "laptop", "tablet", "speaker", "headphone", "camera", "printer", "console"}},
	{"Tools & Hardware", []string{"drill", "saw", "wrench", "sander", "tool", "ladder", "mailbox", "mail box", "toolbox"}},
	{"Furniture", []string{"sofa", "couch", "recliner", "chair", "table", "desk", "dresser", "bookcase", "shelf", "cabinet", "bed frame", "mattress"}},
	{"Kitchenware", []string{"cookware", "pot", "pan", "skillet", "knife", "utensil", "bakeware", "dinnerware", "dish set"}},
	{"Bedding & Linens", []string{"sheet", "comforter", "blanket", "pillow", "duvet", "towel", "quilt"}},
	{"Home Decor", []string{"lamp", "rug", "curtain", "mirror", "vase", "picture frame", "clock", "candle"}},
	{"Outdoor & Garden", []string{"grill", "patio", "mower", "hose", "planter", "umbrella", "shed"}},
}

// ClassifySubcategory tags a result with an inventory subcategory based on
// keyword rules over the listing title. The title is never semantically
// parsed, only scanned for substrings.
func ClassifySubcategory(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range subcategoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.label
			}
		}
	}
	return DefaultSubcategory
}
