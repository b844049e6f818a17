package providers

import (
	"net/http"
	"testing"
)

func TestThumbnailURL(t *testing.T) {
	tests := []struct {
		image string
		size  ImageSize
		want  string
	}{
		{"https://www.themealdb.com/images/media/meals/x.jpg", ImageSmall, "https://www.themealdb.com/images/media/meals/x.jpg/preview/small"},
		{"https://www.themealdb.com/images/media/meals/x.jpg", "", "https://www.themealdb.com/images/media/meals/x.jpg/preview/medium"},
		{"", ImageLarge, ""},
	}
	for _, tt := range tests {
		if got := ThumbnailURL(tt.image, tt.size); got != tt.want {
			t.Errorf("ThumbnailURL(%q, %q) = %q, want %q", tt.image, tt.size, got, tt.want)
		}
	}
}

func TestIngredientImageURL(t *testing.T) {
	base := "https://www.themealdb.com/images/ingredients"
	tests := []struct {
		name string
		size ImageSize
		want string
	}{
		{"Lime", ImageSmall, base + "/lime-small.png"},
		{"Chicken  Breast", "", base + "/chicken_breast-medium.png"},
		{"Red Pepper Flakes", ImageLarge, base + "/red_pepper_flakes-large.png"},
		{"Salt", "huge", base + "/salt-medium.png"},
		{"", ImageSmall, ""},
	}
	for _, tt := range tests {
		if got := IngredientImageURL(base+"/", tt.name, tt.size); got != tt.want {
			t.Errorf("IngredientImageURL(%q, %q) = %q, want %q", tt.name, tt.size, got, tt.want)
		}
	}
}

func TestMealDBClient_IngredientImageURLUsesConfiguredBase(t *testing.T) {
	client := NewMealDBClient("https://api.example.com", "https://img.example.com/ing/", http.DefaultClient)
	if got := client.IngredientImageURL("Garlic", ImageMedium); got != "https://img.example.com/ing/garlic-medium.png" {
		t.Errorf("IngredientImageURL = %q", got)
	}
}

func TestParseImageSize(t *testing.T) {
	if ParseImageSize("LARGE") != ImageLarge {
		t.Error("ParseImageSize should be case-insensitive")
	}
	if ParseImageSize("") != ImageMedium {
		t.Error("ParseImageSize should default to medium")
	}
}
