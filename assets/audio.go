package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SampleRate is the rate every sound is decoded to
const SampleRate = 44100

// SoundDir is the sound directory inside the asset directory
const SoundDir = "sounds"

// Audio plays short decoded sound effects by id
type Audio struct {
	context *audio.Context
	sounds  map[string][]byte
	volume  float64
	log     *zap.Logger
}

// LoadAudio decodes every wav, ogg and mp3 file under dir/sounds. The file
// name without extension is the sound id. A missing directory yields a
// silent player.
func LoadAudio(context *audio.Context, dir string, log *zap.Logger) (*Audio, error) {
	a := &Audio{
		context: context,
		sounds:  make(map[string][]byte),
		volume:  1.0,
		log:     log,
	}
	root := filepath.Join(dir, SoundDir)

	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("no sound directory, audio is silent", zap.String("dir", root))
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sounds: %w", err)
	}

	var (
		mu    sync.Mutex
		group errgroup.Group
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		group.Go(func() error {
			pcm, err := decodeSound(filepath.Join(root, name))
			if err != nil {
				log.Warn("sound skipped", zap.String("file", name), zap.Error(err))
				return nil
			}
			mu.Lock()
			a.sounds[strings.TrimSuffix(name, filepath.Ext(name))] = pcm
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info("sounds loaded", zap.Int("count", len(a.sounds)))
	return a, nil
}

// decodeSound reads a sound file fully into PCM bytes at SampleRate
func decodeSound(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio file: %w", err)
	}
	return io.ReadAll(stream)
}

// PlaySound starts a sound. Unknown ids are ignored.
func (a *Audio) PlaySound(id string) {
	pcm, ok := a.sounds[id]
	if !ok || a.context == nil {
		return
	}
	player := a.context.NewPlayerFromBytes(pcm)
	player.SetVolume(a.volume)
	player.Play()
}

// SetVolume sets the playback volume (0.0 to 1.0)
func (a *Audio) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	a.volume = volume
}

// Has reports whether a sound id is loaded
func (a *Audio) Has(id string) bool {
	_, ok := a.sounds[id]
	return ok
}
