// Package profile defines the known kinds of settings files and the
// defaults each of them carries.
package profile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/microutils/settings"
)

// Kind names a configuration kind.
type Kind string

const (
	Plain  Kind = "plain"
	Client Kind = "client"
	Window Kind = "window"
)

// Kinds returns every known kind.
func Kinds() []Kind {
	return []Kind{Plain, Client, Window}
}

// Parse returns the Kind named by s. An empty string is Plain.
func Parse(s string) (Kind, error) {
	if s == "" {
		return Plain, nil
	}
	k := Kind(strings.ToLower(s))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

// Defaults returns the defaults function for k.
func (k Kind) Defaults() settings.DefaultsFunc {
	switch k {
	case Client:
		return clientDefaults
	case Window:
		return windowDefaults
	default:
		return nil
	}
}

func clientDefaults(s *settings.Store, overwrite bool) {
	if _, ok := s.Get("client.id"); !ok || overwrite {
		s.Set("client.id", uuid.NewString())
	}
	s.SetDefault("server.url", "https://localhost:8443", overwrite)
	s.SetDefault("log.level", "INFO", overwrite)
}

func windowDefaults(s *settings.Store, overwrite bool) {
	s.SetDefault("window.width", "800", overwrite)
	s.SetDefault("window.height", "600", overwrite)
	s.SetDefault("window.theme", "light", overwrite)
}
