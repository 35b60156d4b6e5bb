package fonts

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	Score    FontName = "score"
	Title    FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the built-in faces, preferring a font.ttf found in the
// resources directory over the bundled Go fonts.
func Load(resourcesDir string) {
	regular := goregular.TTF
	if ttf, err := os.ReadFile(filepath.Join(resourcesDir, "font.ttf")); err == nil {
		regular = ttf
	} else if !os.IsNotExist(err) {
		log.Printf("Warning: Could not read font override: %v", err)
	}

	LoadFontWithSize(HUD, regular, 20)
	LoadFontWithSize(HUDSmall, regular, 14)
	LoadFontWithSize(Title, regular, 32)
	LoadFontWithSize(Score, gomono.TTF, 24)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s could not be parsed: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
