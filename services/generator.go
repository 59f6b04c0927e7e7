package services

import (
	"context"
	"fmt"

	"github.com/brandforge/logo-backend/models"
)

// LogoGenerator produces exactly five candidate designs for a validated
// form. Implementations backed by external design APIs may fail; the
// service layer absorbs such failures by falling back to the deterministic
// catalog strategy, so generation as a whole never fails.
type LogoGenerator interface {
	GenerateLogos(ctx context.Context, form models.LogoRequestForm) ([]models.GeneratedLogo, error)
}

// CatalogGenerator is the deterministic strategy: candidates come from
// fixed image and label tables keyed on industry and style. It is total
// over validated input and never returns an error.
type CatalogGenerator struct {
	policy wellnessPolicy
}

func NewCatalogGenerator() *CatalogGenerator {
	return &CatalogGenerator{policy: defaultWellnessPolicy}
}

func (g *CatalogGenerator) GenerateLogos(_ context.Context, form models.LogoRequestForm) ([]models.GeneratedLogo, error) {
	images := industryImages[NormalizeIndustry(form.Industry)]
	labels := styleVariations[NormalizeStyle(form.Style)]
	wellness := g.policy.applies(Industry(form.Industry), form.LogoName)
	descriptions := contextualDescriptions(form, wellness)

	slug := slugify(form.LogoName)
	logos := make([]models.GeneratedLogo, 0, candidateCount)
	for i := 0; i < candidateCount; i++ {
		logos = append(logos, models.GeneratedLogo{
			ID:          fmt.Sprintf("ai-logo-%s-%d", slug, i+1),
			Title:       fmt.Sprintf("%s - %s", form.LogoName, labels[i]),
			Description: descriptions[i],
			ImageURL:    images[i] + imageParams,
			Style:       form.Style,
		})
	}
	return logos, nil
}
