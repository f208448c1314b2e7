package user

// Preferences are display settings kept per user email.
type Preferences struct {
	darkMode bool
}

func DefaultPreferences() Preferences {
	return Preferences{}
}

func NewPreferences(darkMode bool) Preferences {
	return Preferences{darkMode: darkMode}
}

func (p Preferences) DarkMode() bool { return p.darkMode }
