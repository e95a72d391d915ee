package dto

type NarrationOutput struct {
	Text     string
	Degraded bool
	Source   string
	Persona  string
}
