package dto

// LanguageInfo pairs a display name with its ISO code.
type LanguageInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// LanguagesResponse lists the closed language set the UI may offer. Targets
// excludes the requested source language.
type LanguagesResponse struct {
	Sources []LanguageInfo `json:"sources"`
	Targets []LanguageInfo `json:"targets"`
}
