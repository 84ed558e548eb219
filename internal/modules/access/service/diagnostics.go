package service

import "github.com/google/uuid"

// Report echoes how an identifier and the allow-list are interpreted.
// It never carries credentials, only whether one is configured.
type Report struct {
	OK     bool      `json:"ok"`
	Domain string    `json:"domain,omitempty"`
	DB     IDReport  `json:"db"`
	Env    EnvReport `json:"env"`
}

type IDReport struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Canonical  string `json:"canonical,omitempty"`
	Allowed    bool   `json:"allowed"`
}

type EnvReport struct {
	HasToken    bool     `json:"has_token"`
	AllowedAny  bool     `json:"allowed_any"`
	AllowedList []string `json:"allowed_list"`
	AllowedRaw  string   `json:"allowed_raw"`
}

// Diagnose builds a report for rawID against the guard's allow-list.
func (g *Guard) Diagnose(rawID, allowedRaw string, hasToken bool) Report {
	normalized := Normalize(rawID)

	var canonical string
	if id, err := uuid.Parse(normalized); err == nil {
		canonical = id.String()
	}

	return Report{
		OK: true,
		DB: IDReport{
			Raw:        rawID,
			Normalized: normalized,
			Canonical:  canonical,
			Allowed:    rawID != "" && g.IsAllowed(rawID),
		},
		Env: EnvReport{
			HasToken:    hasToken,
			AllowedAny:  g.AllowsAny(),
			AllowedList: g.AllowList(),
			AllowedRaw:  allowedRaw,
		},
	}
}
