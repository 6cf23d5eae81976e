// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
)

// Resource path constants. Collected in one place so the CLI, the
// dashboard, and the mock server agree on the wire paths.
const (
	PathServices          = "/services"
	PathEvents            = "/events"
	PathNews              = "/news"
	PathResearch          = "/research"
	PathNotices           = "/notices"
	PathFeedback          = "/feedback"
	PathUsers             = "/users"
	PathDonors            = "/blood-donation"
	PathDonationStats     = "/blood-donation/stats"
	PathUrgentRequests    = "/urgent-request"
	PathAppointments      = "/appointments"
	PathCareers           = "/careers"
	PathAmbulanceBookings = "/ambulance-bookings"
	PathGallery           = "/gallery"
	PathProfile           = "/profile"
)

// Services returns the CRUD surface for hospital services.
func (client *Client) Services() Collection[Service] {
	return Collection[Service]{client: client, path: PathServices}
}

// Events returns the CRUD surface for event listings.
func (client *Client) Events() Collection[Event] {
	return Collection[Event]{client: client, path: PathEvents}
}

// News returns the CRUD surface for news articles.
func (client *Client) News() Collection[NewsItem] {
	return Collection[NewsItem]{client: client, path: PathNews}
}

// Research returns the CRUD surface for research publications.
func (client *Client) Research() Collection[ResearchItem] {
	return Collection[ResearchItem]{client: client, path: PathResearch}
}

// Notices returns the CRUD surface for administrative notices.
func (client *Client) Notices() Collection[Notice] {
	return Collection[Notice]{client: client, path: PathNotices}
}

// Feedback returns the CRUD surface for visitor feedback.
func (client *Client) Feedback() Collection[Feedback] {
	return Collection[Feedback]{client: client, path: PathFeedback}
}

// Users returns the CRUD surface for staff accounts.
func (client *Client) Users() Collection[User] {
	return Collection[User]{client: client, path: PathUsers}
}

// Donors returns the CRUD surface for registered blood donors.
func (client *Client) Donors() Collection[Donor] {
	return Collection[Donor]{client: client, path: PathDonors}
}

// UrgentRequests returns the CRUD surface for urgent blood requests.
func (client *Client) UrgentRequests() Collection[UrgentRequest] {
	return Collection[UrgentRequest]{client: client, path: PathUrgentRequests}
}

// Appointments returns the CRUD surface for appointment requests.
func (client *Client) Appointments() Collection[Appointment] {
	return Collection[Appointment]{client: client, path: PathAppointments}
}

// Careers returns the CRUD surface for career postings.
func (client *Client) Careers() Collection[CareerPosting] {
	return Collection[CareerPosting]{client: client, path: PathCareers}
}

// AmbulanceBookings returns the CRUD surface for ambulance bookings.
func (client *Client) AmbulanceBookings() Collection[AmbulanceBooking] {
	return Collection[AmbulanceBooking]{client: client, path: PathAmbulanceBookings}
}

// Gallery returns the CRUD surface for gallery image metadata. Image
// bytes are uploaded via [Client.UploadGalleryImage].
func (client *Client) Gallery() Collection[GalleryImage] {
	return Collection[GalleryImage]{client: client, path: PathGallery}
}

// DonationStats fetches the aggregate counters for the blood donation
// dashboard. Fetched alongside the donor list on screen load.
func (client *Client) DonationStats(ctx context.Context) (DonationStats, error) {
	var stats DonationStats
	response, err := client.do(ctx, http.MethodGet, PathDonationStats, nil, nil)
	if err != nil {
		return stats, err
	}
	err = decodeInto(response, "donation stats", &stats)
	return stats, err
}

// Profile fetches the authenticated admin's own account record.
func (client *Client) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	response, err := client.do(ctx, http.MethodGet, PathProfile, nil, nil)
	if err != nil {
		return profile, err
	}
	err = decodeInto(response, "profile", &profile)
	return profile, err
}

// UpdateProfile replaces the authenticated admin's own record.
func (client *Client) UpdateProfile(ctx context.Context, profile Profile) (Profile, error) {
	var updated Profile
	response, err := client.do(ctx, http.MethodPut, PathProfile, nil, profile)
	if err != nil {
		return updated, err
	}
	err = decodeInto(response, "update profile", &updated)
	return updated, err
}
