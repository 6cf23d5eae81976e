// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
	"github.com/carewell-health/carewell/lib/api"
)

func donorsCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Donor]{
		name:       "donors",
		singular:   "donor",
		collection: (*api.Client).Donors,
		columns: []column[api.Donor]{
			{"id", func(d api.Donor) string { return d.ID }},
			{"name", func(d api.Donor) string { return d.FullName }},
			{"blood", func(d api.Donor) string { return d.BloodGroup }},
			{"phone", func(d api.Donor) string { return d.Phone }},
			{"status", func(d api.Donor) string { return d.Status }},
		},
		extra: []*cli.Command{donorStatsCommand()},
	})
}

// donorStatsCommand prints the aggregate counters shown at the top of
// the blood donation dashboard.
func donorStatsCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
	}
	return &cli.Command{
		Name:    "stats",
		Summary: "Show aggregate donation statistics",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("stats", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext("donors/stats")
			if err != nil {
				return err
			}
			stats, err := app.Client.DonationStats(context.Background())
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(stats); done {
				return err
			}
			fmt.Printf("donors: %d\nopen requests: %d\ndonations this month: %d\n",
				stats.TotalDonors, stats.OpenRequests, stats.DonationsThis)
			for status, count := range stats.ByStatus {
				fmt.Printf("  %s: %d\n", status, count)
			}
			return nil
		},
	}
}

func noticesCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Notice]{
		name:       "notices",
		singular:   "notice",
		collection: (*api.Client).Notices,
		columns: []column[api.Notice]{
			{"id", func(n api.Notice) string { return n.ID }},
			{"title", func(n api.Notice) string { return n.Title }},
			{"category", func(n api.Notice) string { return n.Category }},
			{"expires", func(n api.Notice) string { return n.ExpiresAt }},
		},
	})
}

func servicesCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Service]{
		name:       "services",
		singular:   "service",
		collection: (*api.Client).Services,
		columns: []column[api.Service]{
			{"id", func(s api.Service) string { return s.ID }},
			{"name", func(s api.Service) string { return s.Name }},
			{"category", func(s api.Service) string { return s.Category }},
		},
	})
}

func eventsCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Event]{
		name:       "events",
		singular:   "event",
		collection: (*api.Client).Events,
		columns: []column[api.Event]{
			{"id", func(e api.Event) string { return e.ID }},
			{"title", func(e api.Event) string { return e.Title }},
			{"starts", func(e api.Event) string { return e.StartsAt }},
			{"status", func(e api.Event) string { return e.Status }},
		},
	})
}

func newsCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.NewsItem]{
		name:       "news",
		singular:   "article",
		collection: (*api.Client).News,
		columns: []column[api.NewsItem]{
			{"id", func(n api.NewsItem) string { return n.ID }},
			{"title", func(n api.NewsItem) string { return n.Title }},
			{"published", func(n api.NewsItem) string { return n.PublishedAt }},
		},
	})
}

func researchCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.ResearchItem]{
		name:       "research",
		singular:   "publication",
		collection: (*api.Client).Research,
		columns: []column[api.ResearchItem]{
			{"id", func(r api.ResearchItem) string { return r.ID }},
			{"title", func(r api.ResearchItem) string { return r.Title }},
			{"authors", func(r api.ResearchItem) string { return strings.Join(r.Authors, ", ") }},
		},
	})
}

func usersCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.User]{
		name:       "users",
		singular:   "user",
		collection: (*api.Client).Users,
		columns: []column[api.User]{
			{"id", func(u api.User) string { return u.ID }},
			{"name", func(u api.User) string { return u.FullName }},
			{"email", func(u api.User) string { return u.Email }},
			{"role", func(u api.User) string { return u.Role }},
		},
	})
}

func feedbackCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Feedback]{
		name:       "feedback",
		singular:   "feedback entry",
		collection: (*api.Client).Feedback,
		columns: []column[api.Feedback]{
			{"id", func(f api.Feedback) string { return f.ID }},
			{"name", func(f api.Feedback) string { return f.FullName }},
			{"email", func(f api.Feedback) string { return f.Email }},
			{"status", func(f api.Feedback) string { return f.Status }},
		},
	})
}

func urgentCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.UrgentRequest]{
		name:       "urgent",
		singular:   "urgent request",
		collection: (*api.Client).UrgentRequests,
		columns: []column[api.UrgentRequest]{
			{"id", func(r api.UrgentRequest) string { return r.ID }},
			{"patient", func(r api.UrgentRequest) string { return r.PatientName }},
			{"blood", func(r api.UrgentRequest) string { return r.BloodGroup }},
			{"needed by", func(r api.UrgentRequest) string { return r.NeededBy }},
			{"status", func(r api.UrgentRequest) string { return r.Status }},
		},
	})
}

func appointmentsCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.Appointment]{
		name:       "appointments",
		singular:   "appointment",
		collection: (*api.Client).Appointments,
		columns: []column[api.Appointment]{
			{"id", func(a api.Appointment) string { return a.ID }},
			{"patient", func(a api.Appointment) string { return a.PatientName }},
			{"department", func(a api.Appointment) string { return a.Department }},
			{"scheduled", func(a api.Appointment) string { return a.ScheduledAt }},
			{"status", func(a api.Appointment) string { return a.Status }},
		},
	})
}

func careersCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.CareerPosting]{
		name:       "careers",
		singular:   "posting",
		collection: (*api.Client).Careers,
		columns: []column[api.CareerPosting]{
			{"id", func(p api.CareerPosting) string { return p.ID }},
			{"title", func(p api.CareerPosting) string { return p.Title }},
			{"department", func(p api.CareerPosting) string { return p.Department }},
			{"deadline", func(p api.CareerPosting) string { return p.Deadline }},
		},
	})
}

func ambulanceCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.AmbulanceBooking]{
		name:       "ambulance",
		singular:   "booking",
		collection: (*api.Client).AmbulanceBookings,
		columns: []column[api.AmbulanceBooking]{
			{"id", func(b api.AmbulanceBooking) string { return b.ID }},
			{"caller", func(b api.AmbulanceBooking) string { return b.CallerName }},
			{"phone", func(b api.AmbulanceBooking) string { return b.Phone }},
			{"status", func(b api.AmbulanceBooking) string { return b.Status }},
		},
	})
}

func galleryCommand() *cli.Command {
	return resourceGroup(resourceSpec[api.GalleryImage]{
		name:       "gallery",
		singular:   "image",
		collection: (*api.Client).Gallery,
		columns: []column[api.GalleryImage]{
			{"id", func(g api.GalleryImage) string { return g.ID }},
			{"title", func(g api.GalleryImage) string { return g.Title }},
			{"url", func(g api.GalleryImage) string { return g.ImageURL }},
			{"digest", func(g api.GalleryImage) string { return g.Digest }},
		},
		extra: []*cli.Command{galleryUploadCommand()},
	})
}

type uploadParams struct {
	Title   string `flag:"title,t" desc:"image title"`
	Caption string `flag:"caption,c" desc:"image caption"`
}

// galleryUploadCommand is the one multipart path in the CLI: the image
// travels with its blake3 digest so the server can verify integrity.
func galleryUploadCommand() *cli.Command {
	var params uploadParams
	return &cli.Command{
		Name:    "upload",
		Summary: "Upload an image file to the gallery",
		Usage:   "carewell gallery upload <file> --title <title> [--caption <caption>]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("upload", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one image file argument")
			}
			if params.Title == "" {
				return fmt.Errorf("--title is required")
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer file.Close()

			app, err := newAppContext("gallery/upload")
			if err != nil {
				return err
			}
			created, err := app.Client.UploadGalleryImage(context.Background(),
				params.Title, params.Caption, filepath.Base(args[0]), file)
			if err != nil {
				return err
			}
			return cli.WriteJSON(created)
		},
	}
}
