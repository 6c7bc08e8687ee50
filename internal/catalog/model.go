package catalog

import "strings"

// Product represents a single catalog entry.
// Immutable once loaded; the pipeline never writes back to the catalog.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	Attributes []string `json:"attributes"`
	Audience   string   `json:"audience,omitempty"`
}

// Attribute returns the value of a "key: value" attribute, or "" when the
// product carries no attribute with that key. Keys match case-insensitively.
func (p Product) Attribute(key string) string {
	for _, a := range p.Attributes {
		k, v, ok := splitAttribute(a)
		if ok && strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// LeadAttribute returns the first descriptive attribute, skipping
// call-to-action entries which belong in email copy only.
func (p Product) LeadAttribute() string {
	for _, a := range p.Attributes {
		if isCTA(a) {
			continue
		}
		return a
	}
	return ""
}

// FeatureList returns the attributes joined for display, excluding
// call-to-action entries.
func (p Product) FeatureList() string {
	var features []string
	for _, a := range p.Attributes {
		if isCTA(a) {
			continue
		}
		features = append(features, a)
	}
	return strings.Join(features, ", ")
}

func isCTA(attr string) bool {
	k, _, ok := splitAttribute(attr)
	return ok && strings.EqualFold(k, "cta")
}

func splitAttribute(attr string) (key, value string, ok bool) {
	parts := strings.SplitN(attr, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
