package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// HealthBarShader draws the hp ring around ships.
	HealthBarShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/healthbar.kage")
	if err != nil {
		return err
	}
	HealthBarShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
