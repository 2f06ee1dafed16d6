package domain

// Profile holds the user's tunable thresholds.
type Profile struct {
	ID          string
	EFSTarget   int
	RotLimitMin int
	// AutoAdvise triggers an intervention consult when the day's rot exceeds
	// RotLimitMin. When false the threshold only colors the dashboard warning.
	AutoAdvise bool
	Timezone   string
}

// DefaultProfile returns the profile used until the user changes anything.
func DefaultProfile() *Profile {
	return &Profile{
		ID:          "default",
		EFSTarget:   480,
		RotLimitMin: 60,
		AutoAdvise:  false,
		Timezone:    "IST",
	}
}
