package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slotmachine/internal/env"
)

func TestApplyEnv(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		want func(*Config)
	}{
		{"nothing set", nil, func(*Config) {}},
		{"seed", map[string]string{env.Seed: "42"}, func(c *Config) { c.Seed = 42 }},
		{"fps", map[string]string{env.TargetFPS: "144"}, func(c *Config) { c.Window.TargetFPS = 144 }},
		{"mem alloc", map[string]string{env.MemAlloc: "true"}, func(c *Config) { c.ShowMemAlloc = true }},
		{"malformed values ignored", map[string]string{
			env.Seed:      "-3",
			env.TargetFPS: "fast",
			env.MemAlloc:  "sometimes",
		}, func(*Config) {}},
		{"all", map[string]string{env.Seed: "7", env.TargetFPS: "30", env.MemAlloc: "1"}, func(c *Config) {
			c.Seed = 7
			c.Window.TargetFPS = 30
			c.ShowMemAlloc = true
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{env.Seed, env.TargetFPS, env.MemAlloc} {
				t.Setenv(key, tc.vars[key])
			}
			got := Default()
			ApplyEnv(&got)

			want := Default()
			tc.want(&want)
			assert.Equal(t, want, got)
		})
	}
}
