package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brandforge/logo-backend/models"
)

// Industry is a brand category label submitted by the form. The form does
// not enforce the known set, so any value outside it normalizes to
// defaultIndustry.
type Industry string

const (
	IndustryTechnology Industry = "technology"
	IndustryHealthcare Industry = "healthcare"
	IndustryFitness    Industry = "fitness"
	IndustryWellness   Industry = "wellness"
	IndustryFinance    Industry = "finance"
	IndustryEducation  Industry = "education"
	IndustryRetail     Industry = "retail"
	IndustryFood       Industry = "food"
)

const defaultIndustry = IndustryFitness

// Style is a visual direction label submitted by the form. Unrecognized
// values normalize to defaultStyle.
type Style string

const (
	StyleModern     Style = "modern"
	StyleVintage    Style = "vintage"
	StyleMinimalist Style = "minimalist"
	StylePlayful    Style = "playful"
)

const defaultStyle = StyleModern

// NormalizeIndustry maps a submitted industry label onto the known set,
// degrading to the default category instead of erroring.
func NormalizeIndustry(raw string) Industry {
	industry := Industry(raw)
	if _, ok := industryImages[industry]; ok {
		return industry
	}
	return defaultIndustry
}

// NormalizeStyle maps a submitted style label onto the known set, degrading
// to the default style instead of erroring.
func NormalizeStyle(raw string) Style {
	style := Style(raw)
	if _, ok := styleVariations[style]; ok {
		return style
	}
	return defaultStyle
}

// candidateCount is fixed: every completed request carries exactly this
// many candidates, at ordinal positions 1..5.
const candidateCount = 5

// imageParams are the fixed rendering parameters appended to every base
// image reference.
const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400&q=80"

// industryImages holds one ordered image set per known industry.
var industryImages = map[Industry][candidateCount]string{
	IndustryTechnology: {
		"https://images.unsplash.com/photo-1518709268805-4e9042af2176",
		"https://images.unsplash.com/photo-1451187580459-43490279c0fa",
		"https://images.unsplash.com/photo-1519389950473-47ba0277781c",
		"https://images.unsplash.com/photo-1550751827-4bd374c3f58b",
		"https://images.unsplash.com/photo-1518709268805-4e9042af2176",
	},
	IndustryHealthcare: {
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773",
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
		"https://images.unsplash.com/photo-1599901860904-17e6ed7083a0",
		"https://images.unsplash.com/photo-1588286840104-8957b019727f",
	},
	IndustryFitness: {
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773",
		"https://images.unsplash.com/photo-1599901860904-17e6ed7083a0",
		"https://images.unsplash.com/photo-1588286840104-8957b019727f",
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
	},
	IndustryWellness: {
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
		"https://images.unsplash.com/photo-1506126613408-eca07ce68773",
		"https://images.unsplash.com/photo-1599901860904-17e6ed7083a0",
		"https://images.unsplash.com/photo-1588286840104-8957b019727f",
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
	},
	IndustryFinance: {
		"https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		"https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f",
		"https://images.unsplash.com/photo-1554224155-6726b3ff858f",
		"https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3",
		"https://images.unsplash.com/photo-1460925895917-afdab827c52f",
	},
	IndustryEducation: {
		"https://images.unsplash.com/photo-1481627834876-b7833e8f5570",
		"https://images.unsplash.com/photo-1523240795612-9a054b0db644",
		"https://images.unsplash.com/photo-1516321318423-f06f85e504b3",
		"https://images.unsplash.com/photo-1588072432836-e10032774350",
		"https://images.unsplash.com/photo-1503676260728-1c00da094a0b",
	},
	IndustryRetail: {
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8",
		"https://images.unsplash.com/photo-1472851294608-062f824d29cc",
		"https://images.unsplash.com/photo-1556742049-0cfed4f6a45d",
		"https://images.unsplash.com/photo-1586880244406-556ebe35f282",
		"https://images.unsplash.com/photo-1526948128573-703ee1aeb6fa",
	},
	IndustryFood: {
		"https://images.unsplash.com/photo-1414235077428-338989a2e8c0",
		"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445",
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b",
		"https://images.unsplash.com/photo-1493770348161-369560ae357d",
	},
}

// styleVariations holds one ordered label set per known style. Labels feed
// candidate titles in presentation order.
var styleVariations = map[Style][candidateCount]string{
	StyleModern:     {"Modern Tech", "Clean Minimal", "Geometric Bold", "Contemporary Edge", "Sleek Professional"},
	StyleVintage:    {"Classic Retro", "Vintage Charm", "Heritage Style", "Timeless Appeal", "Nostalgic Design"},
	StyleMinimalist: {"Pure Minimal", "Simple Clean", "Essential Form", "Refined Minimal", "Elegant Simple"},
	StylePlayful:    {"Creative Fun", "Dynamic Energy", "Colorful Burst", "Friendly Playful", "Vibrant Spirit"},
}

// wellnessPolicy decides when a request receives the wellness-flavored
// description set. The rule is a business heuristic likely to grow, so it
// is held as data instead of inline branching. It is evaluated against the
// submitted industry label, not the normalized one: an unrecognized
// industry borrows the fitness image set without also borrowing the
// wellness copy.
type wellnessPolicy struct {
	industries   map[Industry]bool
	nameKeywords []string
}

var defaultWellnessPolicy = wellnessPolicy{
	industries: map[Industry]bool{
		IndustryFitness:  true,
		IndustryWellness: true,
	},
	nameKeywords: []string{"yoga"},
}

func (p wellnessPolicy) applies(industry Industry, logoName string) bool {
	if p.industries[industry] {
		return true
	}
	lowered := strings.ToLower(logoName)
	for _, keyword := range p.nameKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// slugify lowercases a logo name and collapses whitespace runs to hyphens
// for use in candidate identifiers.
func slugify(name string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(name), "-")
}

// contextualDescriptions renders the five candidate descriptions for a
// form, in ordinal order. The wellness table is parameterized by name,
// tagline and style; the general table additionally uses color and
// industry.
func contextualDescriptions(form models.LogoRequestForm, wellness bool) [candidateCount]string {
	taglinePart := ""
	if form.Tagline != "" {
		taglinePart = fmt.Sprintf(" - %q", form.Tagline)
	}

	if wellness {
		return [candidateCount]string{
			fmt.Sprintf("3D circle %s logo for %s%s, embodying strength and tranquility", form.Style, form.LogoName, taglinePart),
			fmt.Sprintf("Professional yoga logo design for %s, featuring circular harmony and spiritual balance", form.LogoName),
			fmt.Sprintf("Zen-inspired 3D circle logo for %s, promoting inner peace and wellness community", form.LogoName),
			fmt.Sprintf("Sacred geometry circle design for %s, reflecting yoga traditions and modern aesthetics", form.LogoName),
			fmt.Sprintf("Balanced circular logo for %s, representing the unity of mind, body, and spirit", form.LogoName),
		}
	}

	brandColor := form.Color
	if brandColor == "" {
		brandColor = "brand"
	}
	impactColor := form.Color
	if impactColor == "" {
		impactColor = "visual"
	}

	return [candidateCount]string{
		fmt.Sprintf("Professional %s logo for %s%s, featuring %s colors", form.Style, form.LogoName, taglinePart, brandColor),
		fmt.Sprintf("%s focused design for %s, optimized for modern brand identity", form.Industry, form.LogoName),
		fmt.Sprintf("Contemporary %s approach for %s, reflecting %s industry standards", form.Style, form.LogoName, form.Industry),
		fmt.Sprintf("Bold %s design concept for %s with emphasis on %s impact", form.Style, form.LogoName, impactColor),
		fmt.Sprintf("Sophisticated %s logo solution for %s, tailored for professional use", form.Style, form.LogoName),
	}
}

// logoPrompt renders the design brief the external strategy submits with a
// design request. Wellness-qualifying requests get the yoga-school brief.
func logoPrompt(form models.LogoRequestForm, policy wellnessPolicy) string {
	var b strings.Builder
	if policy.applies(Industry(form.Industry), form.LogoName) {
		fmt.Fprintf(&b, "Create a 3d circle shape professional logo for yoga school with Name as '%s'", form.LogoName)
	} else {
		fmt.Fprintf(&b, "Create a professional logo with Name as '%s'", form.LogoName)
	}
	if form.Tagline != "" {
		fmt.Fprintf(&b, " and Tagline as '%s'", form.Tagline)
	}
	if form.Description != "" {
		fmt.Fprintf(&b, ". %s", form.Description)
	}
	return b.String()
}
