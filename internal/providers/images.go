package providers

import (
	"fmt"
	"regexp"
	"strings"
)

// ImageSize is a TheMealDB image variant.
type ImageSize string

// Supported image sizes.
const (
	ImageSmall  ImageSize = "small"
	ImageMedium ImageSize = "medium"
	ImageLarge  ImageSize = "large"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseImageSize maps s to a size, defaulting to medium.
func ParseImageSize(s string) ImageSize {
	switch ImageSize(strings.ToLower(s)) {
	case ImageSmall:
		return ImageSmall
	case ImageLarge:
		return ImageLarge
	}
	return ImageMedium
}

// ThumbnailURL returns the preview variant of a meal image.
func ThumbnailURL(imageURL string, size ImageSize) string {
	if imageURL == "" {
		return ""
	}
	if size == "" {
		size = ImageMedium
	}
	return fmt.Sprintf("%s/preview/%s", imageURL, size)
}

// IngredientImageURL returns the image URL for an ingredient name.
func (c *MealDBClient) IngredientImageURL(ingredient string, size ImageSize) string {
	return IngredientImageURL(c.ingredientImageBase, ingredient, size)
}

// IngredientImageURL builds <base>/<lower_snake_name>-<size>.png.
func IngredientImageURL(base, ingredient string, size ImageSize) string {
	if ingredient == "" {
		return ""
	}
	name := whitespaceRun.ReplaceAllString(strings.ToLower(ingredient), "_")
	return fmt.Sprintf("%s/%s-%s.png", strings.TrimRight(base, "/"), name, ParseImageSize(string(size)))
}
