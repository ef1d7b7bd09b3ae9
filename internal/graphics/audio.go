package graphics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slotmachine/internal/gfx"
)

var errNoAudio = errors.New("no audio device")

type sound struct {
	s      rl.Sound
	loaded bool
}

func (s *sound) Play() {
	if s.loaded {
		rl.PlaySound(s.s)
	}
}

func (s *sound) Unload() {
	if s.loaded {
		rl.UnloadSound(s.s)
		s.loaded = false
	}
}

type music struct {
	m      rl.Music
	loaded bool
}

func (m *music) Play(loop bool) {
	if !m.loaded {
		return
	}
	m.m.Looping = loop
	rl.PlayMusicStream(m.m)
}

func (m *music) SetVolume(v float32) {
	if m.loaded {
		rl.SetMusicVolume(m.m, v)
	}
}

// Update refills the stream buffers; call it once per frame.
func (m *music) Update() {
	if m.loaded {
		rl.UpdateMusicStream(m.m)
	}
}

func (m *music) Unload() {
	if m.loaded {
		rl.StopMusicStream(m.m)
		rl.UnloadMusicStream(m.m)
		m.loaded = false
	}
}

// LoadSound loads a short effect fully into memory.
func (r *Renderer) LoadSound(path string) (gfx.Sound, error) {
	if !r.audio {
		return nil, fmt.Errorf("sound %s: %w: %v", path, gfx.ErrLoad, errNoAudio)
	}
	if err := exists("sound", path); err != nil {
		return nil, err
	}
	s := rl.LoadSound(path)
	if !rl.IsSoundValid(s) {
		return nil, fmt.Errorf("sound %s: %w", path, gfx.ErrLoad)
	}
	return &sound{s: s, loaded: true}, nil
}

// LoadMusic opens a streamed track.
func (r *Renderer) LoadMusic(path string) (gfx.Music, error) {
	if !r.audio {
		return nil, fmt.Errorf("music %s: %w: %v", path, gfx.ErrLoad, errNoAudio)
	}
	if err := exists("music", path); err != nil {
		return nil, err
	}
	m := rl.LoadMusicStream(path)
	if !rl.IsMusicValid(m) {
		return nil, fmt.Errorf("music %s: %w", path, gfx.ErrLoad)
	}
	return &music{m: m, loaded: true}, nil
}
