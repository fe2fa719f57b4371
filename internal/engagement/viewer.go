package engagement

import "errors"

// ErrProfileNotFound means a logged-in account has no linked author
// profile. Callers must surface it; silently falling back to anonymous
// identity would mix the two like-state domains.
var ErrProfileNotFound = errors.New("no author profile for account")

// ErrViewerRequired means an operation that mutates like state was
// called without any viewer identity.
var ErrViewerRequired = errors.New("viewer identity required")

// Viewer is the engagement identity: either an author profile
// (authenticated) or an opaque device token (anonymous). At most one
// field is set; the zero Viewer is unresolved and renders as "not liked".
type Viewer struct {
	AuthorID string
	DeviceID string
}

// AuthorViewer builds an authenticated viewer from an author profile id.
func AuthorViewer(authorID string) Viewer {
	return Viewer{AuthorID: authorID}
}

// AnonViewer builds an anonymous viewer from a device token.
func AnonViewer(deviceID string) Viewer {
	return Viewer{DeviceID: deviceID}
}

// Authenticated reports whether the viewer carries an author identity.
func (v Viewer) Authenticated() bool { return v.AuthorID != "" }

// Anonymous reports whether the viewer carries a device identity.
func (v Viewer) Anonymous() bool { return v.AuthorID == "" && v.DeviceID != "" }

// Resolved reports whether the viewer carries any identity at all.
func (v Viewer) Resolved() bool { return v.AuthorID != "" || v.DeviceID != "" }

// authorIDPtr returns the author id for event rows, nil for anonymous
// or unresolved viewers.
func (v Viewer) authorIDPtr() *string {
	if v.AuthorID == "" {
		return nil
	}
	id := v.AuthorID
	return &id
}
