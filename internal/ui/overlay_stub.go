//go:build !ebiten

package ui

// Announcement is a no-op placeholder used when the ebiten build tag is absent.
type Announcement struct{}

// NewAnnouncement constructs a stub announcement.
func NewAnnouncement(string, bool) *Announcement { return &Announcement{} }

// Visible always reports false in headless builds.
func (a *Announcement) Visible() bool { return false }

// Update is a no-op in headless builds.
func (a *Announcement) Update(int, int) bool { return false }

// Contains always reports false in headless builds.
func (a *Announcement) Contains(int, int) bool { return false }

// Draw is a no-op placeholder.
func (a *Announcement) Draw(any) {}
