// Package catalog resolves application display names to launcher identifiers.
//
// A catalog answers one question: given the display name of a shortcut
// ("Calculator", "Excel"), what opaque identifier does the Start layout need
// to pin it? For classic desktop applications that is a DesktopApplicationID;
// for packaged applications it is an AppUserModelID of the form
// PackageFamilyName!ApplicationId.
//
// Implementations:
//   - [Static]: identifiers declared in a TOML file
//   - [NewStartApps]: the installed-application list queried from the OS
//     (Windows only)
//   - [Cached]: wraps another catalog with an on-disk lookup cache
//   - [Multi]: ordered fan-out over several catalogs
package catalog

import "context"

// Catalog looks up a launcher identifier by display name.
//
// Lookup matching is exact but case-insensitive. The boolean reports whether
// a match was found; a miss is not an error. When a catalog holds several
// entries with the same name, the first one wins.
type Catalog interface {
	Lookup(ctx context.Context, displayName string) (id string, ok bool, err error)
}

// Multi queries several catalogs in order and returns the first match.
type Multi []Catalog

// Lookup implements Catalog. A miss in one catalog falls through to the
// next; an error from any catalog aborts the lookup.
func (m Multi) Lookup(ctx context.Context, displayName string) (string, bool, error) {
	for _, c := range m {
		id, ok, err := c.Lookup(ctx, displayName)
		if err != nil {
			return "", false, err
		}
		if ok {
			return id, true, nil
		}
	}
	return "", false, nil
}
