package multiplier

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"coinsync/internal/models"
)

// The mirror file holds one JSON-serialized multiplier per line so active
// multipliers survive a node restart. It is best-effort local state, never
// shared between nodes.

// loadMirror reads every line of the mirror file. Unparseable lines are
// dropped; dirty reports whether any were, so the caller can rewrite the
// file without them.
func loadMirror(path string, logger zerolog.Logger) (restored []*models.Multiplier, dirty bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open multiplier mirror: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var m models.Multiplier
		if err := json.Unmarshal(line, &m); err != nil {
			logger.Debug().Err(err).Msg("dropping malformed multiplier mirror line")
			dirty = true
			continue
		}

		restored = append(restored, &m)
	}

	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("read multiplier mirror: %w", err)
	}

	return restored, dirty, nil
}

// appendMirror appends a multiplier line unless a line with the same ID is
// already present
func appendMirror(path string, m *models.Multiplier) error {
	existing, _, err := loadMirror(path, zerolog.Nop())
	if err != nil {
		return err
	}

	for _, stored := range existing {
		if stored.ID == m.ID {
			return nil
		}
	}

	line, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal multiplier: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open multiplier mirror for append: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append multiplier mirror: %w", err)
	}

	return nil
}

// removeFromMirror rewrites the mirror without the matching multiplier
func removeFromMirror(path string, id int64) error {
	existing, _, err := loadMirror(path, zerolog.Nop())
	if err != nil {
		return err
	}

	kept := existing[:0]
	for _, stored := range existing {
		if stored.ID != id {
			kept = append(kept, stored)
		}
	}

	return rewriteMirror(path, kept)
}

// rewriteMirror replaces the mirror atomically: write a temp file in the
// same directory, then rename over the original so a crash mid-write never
// leaves a half-written mirror.
func rewriteMirror(path string, multipliers []*models.Multiplier) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp mirror: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, m := range multipliers {
		line, err := json.Marshal(m)
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("marshal multiplier: %w", err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write temp mirror: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("flush temp mirror: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp mirror: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace multiplier mirror: %w", err)
	}

	return nil
}
