package domain

import (
	"fmt"
	"strings"
)

type Persona struct {
	Name         string `json:"name"`
	Tone         string `json:"tone"`
	Instructions string `json:"instructions"`
}

func DefaultPersona() Persona {
	return Persona{
		Name:         "Coach",
		Tone:         "encouraging",
		Instructions: "Keep it short. Mention one concrete next step.",
	}
}

// Normalize fills blank fields from the default persona.
func (p Persona) Normalize() Persona {
	def := DefaultPersona()
	p.Name = strings.TrimSpace(p.Name)
	p.Tone = strings.TrimSpace(p.Tone)
	p.Instructions = strings.TrimSpace(p.Instructions)
	if p.Name == "" {
		p.Name = def.Name
	}
	if p.Tone == "" {
		p.Tone = def.Tone
	}
	if p.Instructions == "" {
		p.Instructions = def.Instructions
	}
	return p
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"

	DefaultTheme = ThemeSystem
)

func ParseTheme(raw string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(raw))); theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return theme, nil
	default:
		return "", fmt.Errorf("unsupported theme %q", raw)
	}
}

type Settings struct {
	Persona    Persona
	Theme      Theme
	AutoSpeech bool
}
