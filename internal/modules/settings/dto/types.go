package dto

// PersonaInput updates the fields that are set.
type PersonaInput struct {
	Name         *string
	Tone         *string
	Instructions *string
}

type PersonaOutput struct {
	Name         string
	Tone         string
	Instructions string
}

type SettingsOutput struct {
	Persona    PersonaOutput
	Theme      string
	AutoSpeech bool
}
