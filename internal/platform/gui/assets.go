package gui

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // sprite format
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite file names inside the assets directory.
const (
	PlayerSprite = "player.png"
	ZombieSprite = "zombie.png"
)

// ErrAssetNotFound is returned when a sprite file is missing.
var ErrAssetNotFound = errors.New("asset not found")

// Sprites holds the entity images. A nil *Sprites draws plain rectangles.
type Sprites struct {
	Player *ebiten.Image
	Zombie *ebiten.Image
}

// LoadSprites decodes player.png and zombie.png from dir.
// An empty dir returns nil sprites and no error.
func LoadSprites(dir string) (*Sprites, error) {
	if dir == "" {
		return nil, nil
	}

	player, err := decodeImage(filepath.Join(dir, PlayerSprite))
	if err != nil {
		return nil, err
	}
	zombie, err := decodeImage(filepath.Join(dir, ZombieSprite))
	if err != nil {
		return nil, err
	}

	return &Sprites{
		Player: ebiten.NewImageFromImage(player),
		Zombie: ebiten.NewImageFromImage(zombie),
	}, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
