package dto

// UpdateProfileRequest carries the mutable profile fields. XPDelta is an
// explicit grant applied through the progression engine; it is a delta,
// never an absolute value.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Focus   *string `json:"focus,omitempty"`
	Bio     *string `json:"bio,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	XPDelta *int    `json:"xpDelta,omitempty"`
}

// CategoryStats is the per-category completion percentage shown on the
// profile screen.
type CategoryStats struct {
	Corpo    int `json:"corpo"`
	Alma     int `json:"alma"`
	Espirito int `json:"espirito"`
}

type NavigationResponse struct {
	View string `json:"view"`
}
