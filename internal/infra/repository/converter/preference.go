package converter

import "equipment-rental/internal/domain/user"

type PreferenceRecord struct {
	DarkMode bool `json:"darkMode"`
}

// PreferencesRecord is keyed by user email.
type PreferencesRecord map[string]PreferenceRecord

func PreferenceToRecord(p user.Preferences) PreferenceRecord {
	return PreferenceRecord{DarkMode: p.DarkMode()}
}

func PreferenceFromRecord(r PreferenceRecord) user.Preferences {
	return user.NewPreferences(r.DarkMode)
}
