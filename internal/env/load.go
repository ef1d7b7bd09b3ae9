package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Variables read by the slot machine.
const (
	ConfigPath = "SLOTMACHINE_CONFIG"
	Seed       = "SLOTMACHINE_SEED"
	LogPath    = "SLOTMACHINE_LOG"
	TargetFPS  = "SLOTMACHINE_FPS"
	AssetsRoot = "SLOTMACHINE_ASSETS"
	MemAlloc   = "SLOTMACHINE_MEMALLOC"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the process environment win over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	// Remove surrounding quotes if present
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// String returns the variable or def when unset or empty.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Uint64 parses the variable as an unsigned integer. ok is false when unset or malformed.
func Uint64(key string) (v uint64, ok bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int32 parses the variable as a signed 32-bit integer. ok is false when unset or malformed.
func Int32(key string) (v int32, ok bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// Bool parses the variable with strconv.ParseBool. ok is false when unset or malformed.
func Bool(key string) (v bool, ok bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}
