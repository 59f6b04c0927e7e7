package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/logo-backend/models"
)

func baseForm() models.LogoRequestForm {
	return models.LogoRequestForm{
		LogoName:     "Acme",
		Description:  "A sharp brand for a sharp company",
		BusinessName: "Acme Corp",
		Industry:     "technology",
		Style:        "modern",
	}
}

func TestNormalizeIndustry(t *testing.T) {
	t.Run("known labels pass through", func(t *testing.T) {
		assert.Equal(t, IndustryTechnology, NormalizeIndustry("technology"))
		assert.Equal(t, IndustryFood, NormalizeIndustry("food"))
	})

	t.Run("unknown label falls back to fitness", func(t *testing.T) {
		assert.Equal(t, IndustryFitness, NormalizeIndustry("unknown-industry-xyz"))
		assert.Equal(t, IndustryFitness, NormalizeIndustry(""))
	})
}

func TestNormalizeStyle(t *testing.T) {
	t.Run("known labels pass through", func(t *testing.T) {
		assert.Equal(t, StyleVintage, NormalizeStyle("vintage"))
		assert.Equal(t, StylePlayful, NormalizeStyle("playful"))
	})

	t.Run("unknown label falls back to modern", func(t *testing.T) {
		assert.Equal(t, StyleModern, NormalizeStyle("brutalist"))
	})
}

func TestCatalogGenerator_CandidateShape(t *testing.T) {
	generator := NewCatalogGenerator()

	logos, err := generator.GenerateLogos(context.Background(), baseForm())
	require.NoError(t, err)
	require.Len(t, logos, 5)

	for i, logo := range logos {
		assert.NotEmpty(t, logo.Title)
		assert.NotEmpty(t, logo.Description)
		assert.NotEmpty(t, logo.ImageURL)
		assert.Equal(t, "modern", logo.Style)
		assert.Contains(t, logo.ImageURL, "w=400&h=400&q=80")
		assert.Equal(t, fmt.Sprintf("ai-logo-acme-%d", i+1), logo.ID)
	}
}

func TestCatalogGenerator_Deterministic(t *testing.T) {
	generator := NewCatalogGenerator()
	form := baseForm()

	first, err := generator.GenerateLogos(context.Background(), form)
	require.NoError(t, err)
	second, err := generator.GenerateLogos(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCatalogGenerator_TechnologyModernTitles(t *testing.T) {
	generator := NewCatalogGenerator()

	logos, err := generator.GenerateLogos(context.Background(), baseForm())
	require.NoError(t, err)

	expected := []string{
		"Acme - Modern Tech",
		"Acme - Clean Minimal",
		"Acme - Geometric Bold",
		"Acme - Contemporary Edge",
		"Acme - Sleek Professional",
	}
	for i, logo := range logos {
		assert.Equal(t, expected[i], logo.Title)
	}
}

func TestCatalogGenerator_UnknownIndustryUsesFitnessImages(t *testing.T) {
	generator := NewCatalogGenerator()

	unknown := baseForm()
	unknown.Industry = "unknown-industry-xyz"
	fitness := baseForm()
	fitness.Industry = "fitness"

	unknownLogos, err := generator.GenerateLogos(context.Background(), unknown)
	require.NoError(t, err)
	fitnessLogos, err := generator.GenerateLogos(context.Background(), fitness)
	require.NoError(t, err)

	for i := range unknownLogos {
		assert.Equal(t, fitnessLogos[i].ImageURL, unknownLogos[i].ImageURL)
	}
}

func TestCatalogGenerator_WellnessDescriptions(t *testing.T) {
	generator := NewCatalogGenerator()

	t.Run("yoga in the name overrides the industry", func(t *testing.T) {
		form := baseForm()
		form.LogoName = "Shakti Yoga"
		form.Industry = "other"

		logos, err := generator.GenerateLogos(context.Background(), form)
		require.NoError(t, err)

		assert.Equal(t,
			"Professional yoga logo design for Shakti Yoga, featuring circular harmony and spiritual balance",
			logos[1].Description)
		assert.Equal(t,
			"Balanced circular logo for Shakti Yoga, representing the unity of mind, body, and spirit",
			logos[4].Description)
	})

	t.Run("wellness industry selects the wellness set", func(t *testing.T) {
		form := baseForm()
		form.Industry = "wellness"

		logos, err := generator.GenerateLogos(context.Background(), form)
		require.NoError(t, err)

		assert.Contains(t, logos[0].Description, "embodying strength and tranquility")
	})

	t.Run("unrecognized industry keeps the general copy", func(t *testing.T) {
		form := baseForm()
		form.Industry = "unknown-industry-xyz"

		logos, err := generator.GenerateLogos(context.Background(), form)
		require.NoError(t, err)

		// Images fall back to fitness but descriptions stay general.
		assert.Contains(t, logos[1].Description, "unknown-industry-xyz focused design")
	})
}

func TestCatalogGenerator_GeneralDescriptions(t *testing.T) {
	form := baseForm()
	form.Tagline = "Build better"
	form.Color = "emerald"

	logos, err := NewCatalogGenerator().GenerateLogos(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t,
		`Professional modern logo for Acme - "Build better", featuring emerald colors`,
		logos[0].Description)
	assert.Equal(t,
		"Bold modern design concept for Acme with emphasis on emerald impact",
		logos[3].Description)

	t.Run("absent color falls back per slot", func(t *testing.T) {
		plain := baseForm()
		logos, err := NewCatalogGenerator().GenerateLogos(context.Background(), plain)
		require.NoError(t, err)

		assert.Contains(t, logos[0].Description, "featuring brand colors")
		assert.Contains(t, logos[3].Description, "emphasis on visual impact")
	})
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "shakti-yoga", slugify("Shakti Yoga"))
	assert.Equal(t, "a-b-c", slugify("A  B\tC"))
	assert.Equal(t, "acme", slugify("Acme"))
}

func TestLogoPrompt(t *testing.T) {
	t.Run("yoga brief", func(t *testing.T) {
		form := baseForm()
		form.LogoName = "Shakti Yoga"
		form.Tagline = "Find your center"
		form.Description = "Calm and grounded"

		prompt := logoPrompt(form, defaultWellnessPolicy)
		assert.Equal(t,
			"Create a 3d circle shape professional logo for yoga school with Name as 'Shakti Yoga' and Tagline as 'Find your center'. Calm and grounded",
			prompt)
	})

	t.Run("general brief", func(t *testing.T) {
		form := baseForm()
		prompt := logoPrompt(form, defaultWellnessPolicy)
		assert.Equal(t,
			"Create a professional logo with Name as 'Acme'. A sharp brand for a sharp company",
			prompt)
	})
}
