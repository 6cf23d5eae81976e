// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Record types mirror the API's wire format. Every field the client
// does not set is optional on the wire; updates send only the fields
// present in the local form state, so unknown server-side fields are
// not round-tripped.

// Service is one hospital service or department page.
type Service struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Body     string `json:"body,omitempty"` // markdown
	Active   bool   `json:"active,omitempty"`
}

// Event is a hospital event listing.
type Event struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"` // markdown
	Venue    string `json:"venue,omitempty"`
	StartsAt string `json:"startsAt,omitempty"` // RFC 3339
	EndsAt   string `json:"endsAt,omitempty"`
	Status   string `json:"status,omitempty"` // upcoming, ongoing, completed, cancelled
}

// NewsItem is a published news article.
type NewsItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"` // markdown
	PublishedAt string `json:"publishedAt,omitempty"`
}

// ResearchItem is a research publication entry.
type ResearchItem struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract,omitempty"`
	Authors  []string `json:"authors,omitempty"`
}

// Notice is an administrative notice shown on the public site.
type Notice struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"` // markdown
	Category  string `json:"category,omitempty"`
	Pinned    bool   `json:"pinned,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Feedback is a visitor-submitted feedback entry.
type Feedback struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Message  string `json:"message,omitempty"`
	Status   string `json:"status,omitempty"` // new, reviewed, resolved
}

// User is an administrative or medical-staff account.
type User struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"` // admin, editor, specialist
	Category string `json:"category,omitempty"`
	Active   bool   `json:"active,omitempty"`
}

// Donor is a registered blood donor.
type Donor struct {
	ID            string `json:"id,omitempty"`
	FullName      string `json:"fullName"`
	BloodGroup    string `json:"bloodGroup,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Status        string `json:"status,omitempty"` // registered, contacted, completed, deferred
	LastDonatedAt string `json:"lastDonatedAt,omitempty"`
}

// DonationStats is the aggregate view shown at the top of the blood
// donation dashboard.
type DonationStats struct {
	TotalDonors   int            `json:"totalDonors"`
	ByStatus      map[string]int `json:"byStatus,omitempty"`
	ByBloodGroup  map[string]int `json:"byBloodGroup,omitempty"`
	OpenRequests  int            `json:"openRequests"`
	DonationsThis int            `json:"donationsThisMonth"`
}

// UrgentRequest is an open request for a specific blood group.
type UrgentRequest struct {
	ID           string `json:"id,omitempty"`
	PatientName  string `json:"patientName"`
	BloodGroup   string `json:"bloodGroup"`
	HospitalWard string `json:"hospitalWard,omitempty"`
	NeededBy     string `json:"neededBy,omitempty"`
	Status       string `json:"status,omitempty"` // open, matched, closed
}

// Appointment is a patient appointment request.
type Appointment struct {
	ID          string `json:"id,omitempty"`
	PatientName string `json:"patientName"`
	Department  string `json:"department,omitempty"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	Status      string `json:"status,omitempty"` // requested, confirmed, completed, cancelled
}

// CareerPosting is an open position listing.
type CareerPosting struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
	Deadline   string `json:"deadline,omitempty"`
	Body       string `json:"body,omitempty"` // markdown
	Open       bool   `json:"open,omitempty"`
}

// AmbulanceBooking is a booking request for ambulance transport.
type AmbulanceBooking struct {
	ID            string `json:"id,omitempty"`
	CallerName    string `json:"callerName"`
	Phone         string `json:"phone,omitempty"`
	PickupAddress string `json:"pickupAddress,omitempty"`
	Status        string `json:"status,omitempty"` // requested, dispatched, completed, cancelled
}

// GalleryImage is one image in the public gallery. The binary content
// is uploaded separately via [Client.UploadGalleryImage]; this record
// carries only metadata.
type GalleryImage struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Caption  string `json:"caption,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Digest   string `json:"digest,omitempty"` // blake3 hex of the uploaded bytes
}

// Profile is the authenticated admin's own account record.
type Profile struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
