package config

import "slotmachine/internal/env"

// ApplyEnv overrides c with the SLOTMACHINE_* variables that are set and well formed.
func ApplyEnv(c *Config) {
	if seed, ok := env.Uint64(env.Seed); ok {
		c.Seed = seed
	}
	if fps, ok := env.Int32(env.TargetFPS); ok {
		c.Window.TargetFPS = fps
	}
	if show, ok := env.Bool(env.MemAlloc); ok {
		c.ShowMemAlloc = show
	}
}
