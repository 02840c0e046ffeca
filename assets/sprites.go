package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SpriteDir is the sprite directory inside the asset directory
const SpriteDir = "sprites"

// Sprites holds sprite images keyed by "kind" or "kind/frame"
type Sprites struct {
	images map[string]*ebiten.Image
}

// NewSprites creates an empty sprite set; every lookup misses
func NewSprites() *Sprites {
	return &Sprites{images: make(map[string]*ebiten.Image)}
}

// spriteKey maps a file name to its lookup key. "player@jump.png" is the
// "jump" frame of "player"; "barrier.png" covers every frame of "barrier".
func spriteKey(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if kind, frame, ok := strings.Cut(base, "@"); ok {
		return kind + "/" + frame
	}
	return base
}

// LoadSprites decodes every PNG under dir/sprites. A missing directory yields
// an empty set; a file that fails to decode is logged and skipped.
func LoadSprites(dir string, log *zap.Logger) (*Sprites, error) {
	sprites := NewSprites()
	root := filepath.Join(dir, SpriteDir)

	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("no sprite directory, using fallback shapes", zap.String("dir", root))
		return sprites, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sprites: %w", err)
	}

	var (
		mu      sync.Mutex
		decoded = make(map[string]image.Image)
		group   errgroup.Group
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		name := entry.Name()
		group.Go(func() error {
			img, err := decodeImage(filepath.Join(root, name))
			if err != nil {
				log.Warn("sprite skipped", zap.String("file", name), zap.Error(err))
				return nil
			}
			mu.Lock()
			decoded[spriteKey(name)] = img
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// GPU uploads stay on the calling goroutine
	for key, img := range decoded {
		sprites.images[key] = ebiten.NewImageFromImage(img)
	}
	log.Info("sprites loaded", zap.Int("count", len(sprites.images)))
	return sprites, nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Sprite returns the image for a kind and frame, falling back to the kind's
// generic image. nil means no image is loaded.
func (s *Sprites) Sprite(kind, frame string) *ebiten.Image {
	if img, ok := s.images[kind+"/"+frame]; ok {
		return img
	}
	return s.images[kind]
}

// Len returns the number of loaded images
func (s *Sprites) Len() int {
	return len(s.images)
}
