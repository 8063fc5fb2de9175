package category

// Rule maps a category tag to the keywords that trigger it.
type Rule struct {
	Tag      string   `mapstructure:"tag"`
	Keywords []string `mapstructure:"keywords"`
}

// DefaultRules is the keyword table in match order. Earlier rules win when a
// question mentions several categories, so device classes whose names contain
// "phone" or "watch" are listed before the broader smartphone rule.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "headphone", Keywords: []string{"headphone", "earphone", "earbuds", "earbud", "headset", "tws"}},
		{Tag: "smartwatch", Keywords: []string{"smartwatch", "jam tangan", "jam pintar", "watch"}},
		{Tag: "tablet", Keywords: []string{"tablet", "ipad", "tab "}},
		{Tag: "laptop", Keywords: []string{"laptop", "notebook", "macbook", "ultrabook"}},
		{Tag: "smartphone", Keywords: []string{"smartphone", "hp", "handphone", "phone", "telepon", "ponsel"}},
		{Tag: "camera", Keywords: []string{"kamera", "camera", "mirrorless", "dslr"}},
	}
}

// Tags returns the tags of rules in order.
func Tags(rules []Rule) []string {
	tags := make([]string, 0, len(rules))
	for _, r := range rules {
		tags = append(tags, r.Tag)
	}
	return tags
}
