// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"
	"strings"

	"github.com/carewell-health/carewell/lib/api"
	"github.com/carewell-health/carewell/lib/formdraft"
	"github.com/carewell-health/carewell/lib/tui"
)

// collectionSource adapts one typed API collection to the
// screen-neutral [Source]. Each screen supplies the two projections:
// record to row, form values to record.
type collectionSource[T any] struct {
	collection api.Collection[T]
	toRecord   func(T) Record
	fromValues func(values formdraft.Values) T
}

func (source collectionSource[T]) Load(ctx context.Context) ([]Record, error) {
	items, err := source.collection.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(items))
	for index, item := range items {
		records[index] = source.toRecord(item)
	}
	return records, nil
}

func (source collectionSource[T]) Create(ctx context.Context, values formdraft.Values) error {
	_, err := source.collection.Create(ctx, source.fromValues(values))
	return err
}

func (source collectionSource[T]) Update(ctx context.Context, id string, values formdraft.Values) error {
	_, err := source.collection.Update(ctx, id, source.fromValues(values))
	return err
}

func (source collectionSource[T]) SetStatus(ctx context.Context, id, status string) error {
	_, err := source.collection.Patch(ctx, id, map[string]any{"status": status})
	return err
}

func (source collectionSource[T]) Delete(ctx context.Context, id string) error {
	return source.collection.Delete(ctx, id)
}

// options turns value strings into dropdown options with title-cased
// labels.
func options(values ...string) []tui.DropdownOption {
	opts := make([]tui.DropdownOption, len(values))
	for index, value := range values {
		opts[index] = tui.DropdownOption{
			Label: strings.ToUpper(value[:1]) + value[1:],
			Value: value,
		}
	}
	return opts
}

// Screens builds the full dashboard tab set against one API client.
func Screens(client *api.Client) []Screen {
	return []Screen{
		noticesScreen(client),
		servicesScreen(client),
		eventsScreen(client),
		newsScreen(client),
		researchScreen(client),
		usersScreen(client),
		donorsScreen(client),
		urgentRequestsScreen(client),
		appointmentsScreen(client),
		feedbackScreen(client),
		careersScreen(client),
		ambulanceScreen(client),
	}
}

func noticesScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Notices",
		Slug:     "notices",
		Singular: "notice",
		Filters: []FilterSpec{{
			Name:    "category",
			Label:   "Category",
			Options: options("general", "emergency", "schedule"),
			Get:     func(record Record) string { return record.Values["category"] },
		}},
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "category", Label: "Category"},
			{Name: "expiresAt", Label: "Expires at"},
			{Name: "body", Label: "Body"},
		}},
		Source: collectionSource[api.Notice]{
			collection: client.Notices(),
			toRecord: func(notice api.Notice) Record {
				title := notice.Title
				if notice.Pinned {
					title = "📌 " + title
				}
				return Record{
					ID:    notice.ID,
					Title: title,
					Meta:  notice.Category,
					Fields: []FieldValue{
						{Label: "Category", Value: notice.Category},
						{Label: "Expires", Value: notice.ExpiresAt},
					},
					Body: notice.Body,
					Values: formdraft.Values{
						"title":     notice.Title,
						"category":  notice.Category,
						"expiresAt": notice.ExpiresAt,
						"body":      notice.Body,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.Notice {
				return api.Notice{
					Title:     values["title"],
					Category:  values["category"],
					ExpiresAt: values["expiresAt"],
					Body:      values["body"],
				}
			},
		},
	}
}

func servicesScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Services",
		Slug:     "services",
		Singular: "service",
		Filters: []FilterSpec{{
			Name:    "category",
			Label:   "Category",
			Options: options("clinical", "diagnostic", "support"),
			Get:     func(record Record) string { return record.Values["category"] },
		}},
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "name", Label: "Name", Required: true},
			{Name: "category", Label: "Category"},
			{Name: "summary", Label: "Summary"},
			{Name: "body", Label: "Body"},
		}},
		Source: collectionSource[api.Service]{
			collection: client.Services(),
			toRecord: func(service api.Service) Record {
				status := ""
				if service.Active {
					status = "active"
				}
				return Record{
					ID:     service.ID,
					Title:  service.Name,
					Status: status,
					Meta:   service.Category,
					Fields: []FieldValue{
						{Label: "Category", Value: service.Category},
						{Label: "Summary", Value: service.Summary},
					},
					Body: service.Body,
					Values: formdraft.Values{
						"name":     service.Name,
						"category": service.Category,
						"summary":  service.Summary,
						"body":     service.Body,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.Service {
				return api.Service{
					Name:     values["name"],
					Category: values["category"],
					Summary:  values["summary"],
					Body:     values["body"],
					Active:   true,
				}
			},
		},
	}
}

func eventsScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Events",
		Slug:     "events",
		Singular: "event",
		Filters: []FilterSpec{{
			Name:    "status",
			Label:   "Status",
			Options: options("upcoming", "ongoing", "completed", "cancelled"),
			Get:     func(record Record) string { return record.Status },
		}},
		Statuses: options("upcoming", "ongoing", "completed", "cancelled"),
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "venue", Label: "Venue"},
			{Name: "startsAt", Label: "Starts at", Required: true},
			{Name: "endsAt", Label: "Ends at"},
			{Name: "body", Label: "Body"},
		}},
		Source: collectionSource[api.Event]{
			collection: client.Events(),
			toRecord: func(event api.Event) Record {
				return Record{
					ID:     event.ID,
					Title:  event.Title,
					Status: event.Status,
					Meta:   event.StartsAt,
					Fields: []FieldValue{
						{Label: "Venue", Value: event.Venue},
						{Label: "Starts", Value: event.StartsAt},
						{Label: "Ends", Value: event.EndsAt},
					},
					Body: event.Body,
					Values: formdraft.Values{
						"title":    event.Title,
						"venue":    event.Venue,
						"startsAt": event.StartsAt,
						"endsAt":   event.EndsAt,
						"body":     event.Body,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.Event {
				return api.Event{
					Title:    values["title"],
					Venue:    values["venue"],
					StartsAt: values["startsAt"],
					EndsAt:   values["endsAt"],
					Body:     values["body"],
				}
			},
		},
	}
}

func newsScreen(client *api.Client) Screen {
	return Screen{
		Name:     "News",
		Slug:     "news",
		Singular: "article",
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "publishedAt", Label: "Published at"},
			{Name: "body", Label: "Body"},
		}},
		Source: collectionSource[api.NewsItem]{
			collection: client.News(),
			toRecord: func(item api.NewsItem) Record {
				return Record{
					ID:    item.ID,
					Title: item.Title,
					Meta:  item.PublishedAt,
					Fields: []FieldValue{
						{Label: "Published", Value: item.PublishedAt},
					},
					Body: item.Body,
					Values: formdraft.Values{
						"title":       item.Title,
						"publishedAt": item.PublishedAt,
						"body":        item.Body,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.NewsItem {
				return api.NewsItem{
					Title:       values["title"],
					PublishedAt: values["publishedAt"],
					Body:        values["body"],
				}
			},
		},
	}
}

// researchScreen edits publications. Authors travel as one
// comma-separated form field and are split for the wire.
func researchScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Research",
		Slug:     "research",
		Singular: "publication",
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "authors", Label: "Authors"},
			{Name: "abstract", Label: "Abstract"},
		}},
		Source: collectionSource[api.ResearchItem]{
			collection: client.Research(),
			toRecord: func(item api.ResearchItem) Record {
				authors := strings.Join(item.Authors, ", ")
				return Record{
					ID:    item.ID,
					Title: item.Title,
					Meta:  authors,
					Fields: []FieldValue{
						{Label: "Authors", Value: authors},
					},
					Body: item.Abstract,
					Values: formdraft.Values{
						"title":    item.Title,
						"authors":  authors,
						"abstract": item.Abstract,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.ResearchItem {
				return api.ResearchItem{
					Title:    values["title"],
					Abstract: values["abstract"],
					Authors:  splitAuthors(values["authors"]),
				}
			},
		},
	}
}

// splitAuthors parses the comma-separated authors field, dropping
// blanks so trailing commas are harmless.
func splitAuthors(list string) []string {
	var authors []string
	for _, author := range strings.Split(list, ",") {
		if author = strings.TrimSpace(author); author != "" {
			authors = append(authors, author)
		}
	}
	return authors
}

// usersScreen carries the cross-field rule: a specialist must have a
// category (their medical discipline).
func usersScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Users",
		Slug:     "users",
		Singular: "user",
		Filters: []FilterSpec{{
			Name:    "role",
			Label:   "Role",
			Options: options("admin", "editor", "specialist"),
			Get:     func(record Record) string { return record.Values["role"] },
		}},
		Form: formdraft.Schema{
			Fields: []formdraft.Field{
				{Name: "fullName", Label: "Full name", Required: true},
				{Name: "email", Label: "Email", Required: true},
				{Name: "role", Label: "Role", Required: true},
				{Name: "category", Label: "Category"},
			},
			Checks: []formdraft.Check{
				formdraft.RequireWhen("role", "specialist", "category",
					"Category is required for specialists"),
			},
		},
		Source: collectionSource[api.User]{
			collection: client.Users(),
			toRecord: func(user api.User) Record {
				status := "inactive"
				if user.Active {
					status = "active"
				}
				return Record{
					ID:     user.ID,
					Title:  user.FullName,
					Status: status,
					Meta:   user.Email,
					Fields: []FieldValue{
						{Label: "Email", Value: user.Email},
						{Label: "Role", Value: user.Role},
						{Label: "Category", Value: user.Category},
					},
					Values: formdraft.Values{
						"fullName": user.FullName,
						"email":    user.Email,
						"role":     user.Role,
						"category": user.Category,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.User {
				return api.User{
					FullName: values["fullName"],
					Email:    values["email"],
					Role:     values["role"],
					Category: values["category"],
					Active:   true,
				}
			},
		},
	}
}

func donorsScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Donors",
		Slug:     "donors",
		Singular: "donor",
		Filters: []FilterSpec{
			{
				Name:  "bloodGroup",
				Label: "Blood group",
				Options: []tui.DropdownOption{
					{Label: "A+", Value: "A+"}, {Label: "A-", Value: "A-"},
					{Label: "B+", Value: "B+"}, {Label: "B-", Value: "B-"},
					{Label: "O+", Value: "O+"}, {Label: "O-", Value: "O-"},
					{Label: "AB+", Value: "AB+"}, {Label: "AB-", Value: "AB-"},
				},
				Get: func(record Record) string { return record.Values["bloodGroup"] },
			},
			{
				Name:    "status",
				Label:   "Status",
				Options: options("registered", "contacted", "completed", "deferred"),
				Get:     func(record Record) string { return record.Status },
			},
		},
		Statuses: options("registered", "contacted", "completed", "deferred"),
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "fullName", Label: "Full name", Required: true},
			{Name: "bloodGroup", Label: "Blood group", Required: true},
			{Name: "gender", Label: "Gender"},
			{Name: "phone", Label: "Phone", Required: true},
			{Name: "lastDonatedAt", Label: "Last donated"},
		}},
		Source: collectionSource[api.Donor]{
			collection: client.Donors(),
			toRecord: func(donor api.Donor) Record {
				return Record{
					ID:     donor.ID,
					Title:  donor.FullName,
					Status: donor.Status,
					Meta:   donor.BloodGroup + "  " + donor.Phone,
					Fields: []FieldValue{
						{Label: "Blood group", Value: donor.BloodGroup},
						{Label: "Gender", Value: donor.Gender},
						{Label: "Phone", Value: donor.Phone},
						{Label: "Last donated", Value: donor.LastDonatedAt},
					},
					Values: formdraft.Values{
						"fullName":      donor.FullName,
						"bloodGroup":    donor.BloodGroup,
						"gender":        donor.Gender,
						"phone":         donor.Phone,
						"lastDonatedAt": donor.LastDonatedAt,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.Donor {
				return api.Donor{
					FullName:      values["fullName"],
					BloodGroup:    values["bloodGroup"],
					Gender:        values["gender"],
					Phone:         values["phone"],
					LastDonatedAt: values["lastDonatedAt"],
				}
			},
		},
	}
}

func urgentRequestsScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Urgent",
		Slug:     "urgent",
		Singular: "urgent request",
		Filters: []FilterSpec{{
			Name:    "status",
			Label:   "Status",
			Options: options("open", "matched", "closed"),
			Get:     func(record Record) string { return record.Status },
		}},
		Statuses: options("open", "matched", "closed"),
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "patientName", Label: "Patient", Required: true},
			{Name: "bloodGroup", Label: "Blood group", Required: true},
			{Name: "hospitalWard", Label: "Ward"},
			{Name: "neededBy", Label: "Needed by"},
		}},
		Source: collectionSource[api.UrgentRequest]{
			collection: client.UrgentRequests(),
			toRecord: func(request api.UrgentRequest) Record {
				return Record{
					ID:     request.ID,
					Title:  request.PatientName,
					Status: request.Status,
					Meta:   request.BloodGroup + "  " + request.HospitalWard,
					Fields: []FieldValue{
						{Label: "Blood group", Value: request.BloodGroup},
						{Label: "Ward", Value: request.HospitalWard},
						{Label: "Needed by", Value: request.NeededBy},
					},
					Values: formdraft.Values{
						"patientName":  request.PatientName,
						"bloodGroup":   request.BloodGroup,
						"hospitalWard": request.HospitalWard,
						"neededBy":     request.NeededBy,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.UrgentRequest {
				return api.UrgentRequest{
					PatientName:  values["patientName"],
					BloodGroup:   values["bloodGroup"],
					HospitalWard: values["hospitalWard"],
					NeededBy:     values["neededBy"],
				}
			},
		},
	}
}

func appointmentsScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Appointments",
		Slug:     "appointments",
		Singular: "appointment",
		Filters: []FilterSpec{{
			Name:    "status",
			Label:   "Status",
			Options: options("requested", "confirmed", "completed", "cancelled"),
			Get:     func(record Record) string { return record.Status },
		}},
		Statuses: options("requested", "confirmed", "completed", "cancelled"),
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "patientName", Label: "Patient", Required: true},
			{Name: "department", Label: "Department", Required: true},
			{Name: "scheduledAt", Label: "Scheduled at"},
		}},
		Source: collectionSource[api.Appointment]{
			collection: client.Appointments(),
			toRecord: func(appointment api.Appointment) Record {
				return Record{
					ID:     appointment.ID,
					Title:  appointment.PatientName,
					Status: appointment.Status,
					Meta:   appointment.Department,
					Fields: []FieldValue{
						{Label: "Department", Value: appointment.Department},
						{Label: "Scheduled", Value: appointment.ScheduledAt},
					},
					Values: formdraft.Values{
						"patientName": appointment.PatientName,
						"department":  appointment.Department,
						"scheduledAt": appointment.ScheduledAt,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.Appointment {
				return api.Appointment{
					PatientName: values["patientName"],
					Department:  values["department"],
					ScheduledAt: values["scheduledAt"],
				}
			},
		},
	}
}

// feedbackScreen is status-only: visitors write feedback, admins
// triage it. Create/edit/delete are disabled.
func feedbackScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Feedback",
		Slug:     "feedback",
		Singular: "feedback entry",
		ReadOnly: true,
		Filters: []FilterSpec{{
			Name:    "status",
			Label:   "Status",
			Options: options("new", "reviewed", "resolved"),
			Get:     func(record Record) string { return record.Status },
		}},
		Statuses: options("new", "reviewed", "resolved"),
		Source: collectionSource[api.Feedback]{
			collection: client.Feedback(),
			toRecord: func(feedback api.Feedback) Record {
				return Record{
					ID:     feedback.ID,
					Title:  feedback.FullName,
					Status: feedback.Status,
					Meta:   feedback.Email,
					Fields: []FieldValue{
						{Label: "Email", Value: feedback.Email},
					},
					Body: feedback.Message,
				}
			},
			fromValues: func(formdraft.Values) api.Feedback {
				return api.Feedback{}
			},
		},
	}
}

func careersScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Careers",
		Slug:     "careers",
		Singular: "posting",
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "title", Label: "Title", Required: true},
			{Name: "department", Label: "Department"},
			{Name: "deadline", Label: "Deadline"},
			{Name: "body", Label: "Body"},
		}},
		Source: collectionSource[api.CareerPosting]{
			collection: client.Careers(),
			toRecord: func(posting api.CareerPosting) Record {
				status := "closed"
				if posting.Open {
					status = "open"
				}
				return Record{
					ID:     posting.ID,
					Title:  posting.Title,
					Status: status,
					Meta:   posting.Department,
					Fields: []FieldValue{
						{Label: "Department", Value: posting.Department},
						{Label: "Deadline", Value: posting.Deadline},
					},
					Body: posting.Body,
					Values: formdraft.Values{
						"title":      posting.Title,
						"department": posting.Department,
						"deadline":   posting.Deadline,
						"body":       posting.Body,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.CareerPosting {
				return api.CareerPosting{
					Title:      values["title"],
					Department: values["department"],
					Deadline:   values["deadline"],
					Body:       values["body"],
					Open:       true,
				}
			},
		},
	}
}

func ambulanceScreen(client *api.Client) Screen {
	return Screen{
		Name:     "Ambulance",
		Slug:     "ambulance",
		Singular: "booking",
		Filters: []FilterSpec{{
			Name:    "status",
			Label:   "Status",
			Options: options("requested", "dispatched", "completed", "cancelled"),
			Get:     func(record Record) string { return record.Status },
		}},
		Statuses: options("requested", "dispatched", "completed", "cancelled"),
		Form: formdraft.Schema{Fields: []formdraft.Field{
			{Name: "callerName", Label: "Caller", Required: true},
			{Name: "phone", Label: "Phone", Required: true},
			{Name: "pickupAddress", Label: "Pickup address", Required: true},
		}},
		Source: collectionSource[api.AmbulanceBooking]{
			collection: client.AmbulanceBookings(),
			toRecord: func(booking api.AmbulanceBooking) Record {
				return Record{
					ID:     booking.ID,
					Title:  booking.CallerName,
					Status: booking.Status,
					Meta:   booking.Phone,
					Fields: []FieldValue{
						{Label: "Phone", Value: booking.Phone},
						{Label: "Pickup", Value: booking.PickupAddress},
					},
					Values: formdraft.Values{
						"callerName":    booking.CallerName,
						"phone":         booking.Phone,
						"pickupAddress": booking.PickupAddress,
					},
				}
			},
			fromValues: func(values formdraft.Values) api.AmbulanceBooking {
				return api.AmbulanceBooking{
					CallerName:    values["callerName"],
					Phone:         values["phone"],
					PickupAddress: values["pickupAddress"],
				}
			},
		},
	}
}
