// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package main

// seedFixtures loads a small, plausible content set into the store so
// the dashboard has something to show on first launch. IDs are fixed
// so repeated runs and scripts can address the same records.
func seedFixtures(s *store) {
	fixtures := map[string][]record{
		"notices": {
			{
				"id":       "notice-visiting-hours",
				"title":    "Revised visiting hours from 1 September",
				"body":     "Visiting hours change to **4pm–7pm** on all wards.\n\n- ICU: one visitor at a time\n- Maternity: partners only after 6pm",
				"category": "general",
				"pinned":   true,
			},
			{
				"id":       "notice-opd-closure",
				"title":    "OPD closed on Friday for maintenance",
				"body":     "The outpatient department is closed this Friday. Emergency services run as usual.",
				"category": "outpatient",
			},
		},
		"services": {
			{
				"id":       "service-cardiology",
				"name":     "Cardiology",
				"category": "specialist",
				"summary":  "Full cardiac diagnostics and interventional care.",
				"body":     "## Cardiology\n\nECG, echocardiography, angiography, and a 24/7 chest pain unit.",
				"active":   true,
			},
			{
				"id":       "service-physiotherapy",
				"name":     "Physiotherapy",
				"category": "rehabilitation",
				"summary":  "Post-operative and sports injury rehabilitation.",
				"active":   true,
			},
		},
		"events": {
			{
				"id":       "event-health-camp",
				"title":    "Free diabetes screening camp",
				"body":     "Open screening camp at the main lobby. No appointment needed.",
				"venue":    "Main lobby",
				"startsAt": "2026-09-12T09:00:00Z",
				"endsAt":   "2026-09-12T16:00:00Z",
				"status":   "upcoming",
			},
		},
		"news": {
			{
				"id":          "news-mri-upgrade",
				"title":       "New 3T MRI scanner now in service",
				"body":        "The radiology department has commissioned a 3-tesla MRI scanner, cutting scan times by half.",
				"publishedAt": "2026-08-20T08:00:00Z",
			},
		},
		"research": {
			{
				"id":       "research-dengue-cohort",
				"title":    "Dengue severity markers in paediatric admissions",
				"abstract": "A prospective cohort study of admission biomarkers predicting severe dengue.",
				"authors":  []any{"S. Chowdhury", "M. Haque"},
			},
		},
		"users": {
			{
				"id":       "user-admin",
				"fullName": "Nadia Islam",
				"email":    "nadia@carewell.test",
				"role":     "admin",
				"active":   true,
			},
			{
				"id":       "user-cardio",
				"fullName": "Dr. Tanvir Ahmed",
				"email":    "tanvir@carewell.test",
				"role":     "specialist",
				"category": "cardiology",
				"active":   true,
			},
		},
		"blood-donation": {
			{
				"id":         "donor-asha",
				"fullName":   "Asha Rahman",
				"bloodGroup": "O+",
				"gender":     "female",
				"phone":      "01711-000001",
				"status":     "registered",
			},
			{
				"id":            "donor-kamal",
				"fullName":      "Kamal Uddin",
				"bloodGroup":    "A-",
				"gender":        "male",
				"phone":         "01711-000002",
				"status":        "completed",
				"lastDonatedAt": "2026-08-02T10:00:00Z",
			},
			{
				"id":         "donor-farida",
				"fullName":   "Farida Khatun",
				"bloodGroup": "B+",
				"gender":     "female",
				"phone":      "01711-000003",
				"status":     "contacted",
			},
		},
		"urgent-request": {
			{
				"id":           "urgent-icu-3",
				"patientName":  "Rahim Mia",
				"bloodGroup":   "O-",
				"hospitalWard": "ICU-3",
				"neededBy":     "2026-08-29T06:00:00Z",
				"status":       "open",
			},
		},
		"appointments": {
			{
				"id":          "appt-selina",
				"patientName": "Selina Akter",
				"department":  "cardiology",
				"scheduledAt": "2026-09-01T11:30:00Z",
				"status":      "requested",
			},
		},
		"feedback": {
			{
				"id":       "feedback-wait-times",
				"fullName": "Jashim Uddin",
				"email":    "jashim@example.com",
				"message":  "The OPD wait was over two hours. Please add more counters.",
				"status":   "new",
			},
		},
		"careers": {
			{
				"id":         "career-staff-nurse",
				"title":      "Staff Nurse (ICU)",
				"department": "nursing",
				"deadline":   "2026-09-30",
				"body":       "Registered nurse with 2+ years of critical care experience.",
				"open":       true,
			},
		},
		"ambulance-bookings": {
			{
				"id":            "ambulance-uttara",
				"callerName":    "Hasan Mahmud",
				"phone":         "01811-000010",
				"pickupAddress": "House 12, Road 4, Uttara",
				"status":        "requested",
			},
		},
		"gallery": {
			{
				"id":       "gallery-new-wing",
				"title":    "Opening of the new surgical wing",
				"caption":  "Ribbon cutting, March 2026",
				"imageUrl": "/static/gallery/new-wing.jpg",
			},
		},
	}

	for resource, records := range fixtures {
		for _, r := range records {
			s.seed(resource, r)
		}
	}
}
