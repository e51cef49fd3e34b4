package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(Label, goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	face, ok := Label.Lookup()
	if !ok || face == nil {
		t.Fatal("Label face not registered")
	}
	if Label.Get() != face {
		t.Error("Get and Lookup disagree")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(HUD, []byte("not a font")); err == nil {
		t.Error("expected an error for invalid ttf data")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unknown font should panic")
		}
	}()
	FontName("missing").Get()
}
