package snapshot

import "fmt"

// Validate checks a decoded snapshot before import. Returns every problem
// found; an import proceeds only on an empty result, leaving existing state
// untouched otherwise.
func Validate(snap *Snapshot) []error {
	var errs []error

	if snap == nil {
		return []error{fmt.Errorf("snapshot is empty")}
	}
	if snap.Logs == nil {
		errs = append(errs, fmt.Errorf("snapshot missing required logs key"))
	}
	if snap.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, CurrentVersion))
	}
	for i, name := range snap.Subjects {
		if name == "" {
			errs = append(errs, fmt.Errorf("subjects[%d] is empty", i))
		}
	}
	if p := snap.Profile; p != nil {
		if p.EFSTarget < 0 {
			errs = append(errs, fmt.Errorf("profile.efs_target must not be negative"))
		}
		if p.RotLimitMin < 0 {
			errs = append(errs, fmt.Errorf("profile.rot_limit_min must not be negative"))
		}
	}

	return errs
}
