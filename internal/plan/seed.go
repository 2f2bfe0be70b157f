package plan

import "fmt"

// seedResponsible and seedSource are stamped on every task of the
// pre-built plan.
const (
	seedResponsible = "Program Chairman"
	seedSource      = "Program Committee Checklist"
)

// DefaultPlan returns the pre-built committee plan for the term
// beginning in startYear, with task ids assigned from a monotonic
// counter starting at 1.
func DefaultPlan(startYear int) *Plan {
	y := startYear
	y1 := startYear + 1
	d := func(year int, monthDay string) string {
		return fmt.Sprintf("%d-%s", year, monthDay)
	}
	t := func(name, priority, start, due string) Task {
		return Task{
			Name:        name,
			Responsible: seedResponsible,
			StartDate:   start,
			DueDate:     due,
			Status:      StatusNotStarted,
			Priority:    priority,
			Source:      seedSource,
		}
	}

	p := &Plan{
		TermYear:    fmt.Sprintf("%d-%d", y, y1),
		Chairperson: "Program Chairman",
		Periods: []Period{
			{
				Name: fmt.Sprintf("Post-Course & Fall Planning (August - October %d)", y),
				Tasks: []Task{
					t("Facilitate post-School Wrap-Up Meeting", PriorityHigh, d(y, "08-01"), d(y, "08-15")),
					t("Announce next year's Program Chairperson", PriorityHigh, d(y, "08-01"), d(y, "08-15")),
					t("Send Winter Meeting information email", PriorityMedium, d(y, "08-15"), d(y, "08-31")),
					t("Send Class Evaluation Templates reminder", PriorityMedium, d(y, "08-15"), d(y, "08-31")),
					t("Request instructors/deputies to send: Completed evaluation forms", PriorityHigh, d(y, "08-15"), d(y, "08-31")),
					t("Request instructors/deputies to send: Proposed class lineup for next year", PriorityHigh, d(y, "08-15"), d(y, "08-31")),
					t("Request instructors/deputies to send: Any issues or improvements", PriorityMedium, d(y, "08-15"), d(y, "08-31")),
					t("Request instructors/deputies to send: 'Thank You' letters to all speaker", PriorityMedium, d(y, "09-01"), d(y, "09-15")),
					t("Remind instructors to submit class evaluations", PriorityHigh, d(y, "09-01"), d(y, "09-15")),
					t("Start searching for keynote speaker", PriorityHigh, d(y, "09-01"), d(y, "09-30")),
					t("Review class evaluation results with Deputies", PriorityHigh, d(y, "09-15"), d(y, "09-30")),
					t("Choose school colors", PriorityLow, d(y, "09-15"), d(y, "09-30")),
					t("Schedule and prepare Fall Program Committee Meeting", PriorityHigh, d(y, "09-15"), d(y, "09-30")),
					t("Coordinate logistics and catering for Fall Program Committee Meeting", PriorityMedium, d(y, "09-15"), d(y, "09-30")),
					t("Attend Fall Program Committee Meeting", PriorityHigh, d(y, "10-01"), d(y, "10-15")),
					t("Lead class development discussions", PriorityHigh, d(y, "10-01"), d(y, "10-15")),
					t("Take meeting minutes", PriorityMedium, d(y, "10-01"), d(y, "10-15")),
					t("Send out Important Dates", PriorityMedium, d(y, "10-15"), d(y, "10-31")),
					t("Send out Updated Organizational Chart", PriorityMedium, d(y, "10-15"), d(y, "10-31")),
					t("Finish any 'Thank You' letters", PriorityMedium, d(y, "10-15"), d(y, "10-31")),
					t("Send confirmation letters to repeat instructors", PriorityMedium, d(y, "10-15"), d(y, "10-31")),
					t("Get keynote speaker bio and photo to Publications", PriorityHigh, d(y, "10-15"), d(y, "10-31")),
				},
			},
			{
				Name: fmt.Sprintf("Winter Preparation (November %d - January %d)", y, y1),
				Tasks: []Task{
					t("Review new shirt and tee samples", PriorityLow, d(y, "11-01"), d(y, "11-15")),
					t("Finalize and send 'Mark Your Calendar' document", PriorityHigh, d(y, "11-01"), d(y, "11-15")),
					t("Set up SharePoint folders for content uploads", PriorityMedium, d(y, "11-15"), d(y, "11-30")),
					t("Send Thanksgiving message", PriorityLow, d(y, "11-20"), d(y, "11-25")),
					t("Send Information Packets to new authors", PriorityMedium, d(y, "12-01"), d(y, "12-15")),
					t("Confirm Perfect Attendance stickers", PriorityLow, d(y, "12-01"), d(y, "12-15")),
					t("Send holiday note to committee members", PriorityLow, d(y, "12-15"), d(y, "12-25")),
					t("Set up SharePoint Word Pictures folders", PriorityMedium, d(y1, "01-01"), d(y1, "01-15")),
					t("Confirm and resend 'Mark Your Calendar'", PriorityMedium, d(y1, "01-01"), d(y1, "01-15")),
					t("Resend important dates", PriorityMedium, d(y1, "01-01"), d(y1, "01-15")),
					t("Remind people to start uploading papers", PriorityHigh, d(y1, "01-15"), d(y1, "01-31")),
					t("Get final artwork for shirts/backpacks", PriorityMedium, d(y1, "01-15"), d(y1, "01-31")),
					t("Prepare for Winter Meetings", PriorityHigh, d(y1, "01-15"), d(y1, "01-31")),
					t("Solicit nominations for Vice Program Chair", PriorityHigh, d(y1, "01-15"), d(y1, "01-31")),
					t("Draft Program Committee progress report", PriorityMedium, d(y1, "01-15"), d(y1, "01-31")),
				},
			},
			{
				Name: fmt.Sprintf("Spring Finalization (February - April %d)", y1),
				Tasks: []Task{
					t("Attend and Chair Winter Program Committee Meeting", PriorityHigh, d(y1, "02-01"), d(y1, "02-15")),
					t("Finalize class topics and instructors", PriorityHigh, d(y1, "02-15"), d(y1, "02-28")),
					t("Assign classroom monitors for lecture & hands-on", PriorityMedium, d(y1, "02-15"), d(y1, "02-28")),
					t("Distribute Winter Meeting minutes", PriorityMedium, d(y1, "03-01"), d(y1, "03-15")),
					t("Remind Deputies to collect/submit papers", PriorityHigh, d(y1, "03-01"), d(y1, "03-15")),
					t("Contact speakers about May 1 paper deadline", PriorityHigh, d(y1, "03-01"), d(y1, "03-15")),
					t("Submit finalized program and Word Pictures to Publications", PriorityHigh, d(y1, "03-15"), d(y1, "03-31")),
					t("Proofread repeat/new papers and submit edits", PriorityMedium, d(y1, "03-15"), d(y1, "03-31")),
					t("Confirm AGMSC website readiness for April 1 registration", PriorityHigh, d(y1, "03-15"), d(y1, "03-31")),
					t("Schedule room planning meeting with RMU", PriorityMedium, d(y1, "03-15"), d(y1, "03-31")),
					t("Verify POD delivery", PriorityMedium, d(y1, "03-15"), d(y1, "03-31")),
					t("Follow up on paper submissions", PriorityHigh, d(y1, "04-01"), d(y1, "04-15")),
					t("Finalize arrangements with keynote speaker", PriorityHigh, d(y1, "04-01"), d(y1, "04-15")),
					t("Ensure Publications Chair receives all documents", PriorityHigh, d(y1, "04-01"), d(y1, "04-15")),
					t("Perform technical/content review of papers", PriorityMedium, d(y1, "04-15"), d(y1, "04-30")),
					t("Review and confirm Assistant Program Chair candidates", PriorityHigh, d(y1, "04-15"), d(y1, "04-30")),
					t("Set up accommodations for the 2026 Winter Meeting", PriorityMedium, d(y1, "04-15"), d(y1, "04-30")),
				},
			},
			{
				Name: fmt.Sprintf("Pre-Course Execution (May - July %d)", y1),
				Tasks: []Task{
					t("Ensure all papers submitted by May 1", PriorityHigh, d(y1, "05-01"), d(y1, "05-01")),
					t("Complete review and editing of papers by May 15", PriorityHigh, d(y1, "05-01"), d(y1, "05-15")),
					t("Confirm Nitrogen tanks, ribbons, gifts, etc.", PriorityMedium, d(y1, "05-15"), d(y1, "05-31")),
					t("Send speaker packets, including introduction sheets", PriorityMedium, d(y1, "05-15"), d(y1, "05-31")),
					t("Finalize shirt and gift orders", PriorityMedium, d(y1, "05-15"), d(y1, "05-31")),
					t("Send LED board images", PriorityLow, d(y1, "05-15"), d(y1, "05-31")),
					t("Verify charitable donation details with Treasurer", PriorityMedium, d(y1, "05-15"), d(y1, "05-31")),
					t("Send out 2nd registration blast to 4,000+ past attendees", PriorityHigh, d(y1, "05-15"), d(y1, "05-31")),
					t("Coordinate room and resource assignments with RMU", PriorityHigh, d(y1, "06-01"), d(y1, "06-15")),
					t("Confirm attendance of charity rep for General Assembly", PriorityMedium, d(y1, "06-01"), d(y1, "06-15")),
					t("Email lecture forms and monitor packets", PriorityMedium, d(y1, "06-01"), d(y1, "06-15")),
					t("Ensure Hands-On team has submitted monitor forms", PriorityHigh, d(y1, "06-15"), d(y1, "06-30")),
					t("Email final reminder about Guidebook App", PriorityMedium, d(y1, "06-15"), d(y1, "06-30")),
					t("Reminder to download app to registrants", PriorityMedium, d(y1, "06-15"), d(y1, "06-30")),
					t("Submit final papers and edits to Publications (by 2nd week)", PriorityHigh, d(y1, "07-01"), d(y1, "07-14")),
					t("Confirm all monitors assigned", PriorityMedium, d(y1, "07-01"), d(y1, "07-15")),
					t("Check and prepare: Instructor gifts & shirts", PriorityMedium, d(y1, "07-15"), d(y1, "07-31")),
					t("Check and prepare: Lecture evaluation forms", PriorityMedium, d(y1, "07-15"), d(y1, "07-31")),
					t("Certificates (via RMU)", PriorityLow, d(y1, "07-15"), d(y1, "07-31")),
					t("Speech for Opening Ceremony", PriorityHigh, d(y1, "07-15"), d(y1, "07-31")),
					t("Nitrogen deliveries", PriorityMedium, d(y1, "07-15"), d(y1, "07-31")),
					t("Final speaker confirmations", PriorityHigh, d(y1, "07-15"), d(y1, "07-31")),
					t("Submit signature for certificates", PriorityMedium, d(y1, "07-15"), d(y1, "07-31")),
					t("Publish final program and reminders", PriorityHigh, d(y1, "07-15"), d(y1, "07-31")),
					t("Prepare the Agenda for the Program Committee Meeting", PriorityHigh, d(y1, "07-15"), d(y1, "07-31")),
				},
			},
			{
				Name: fmt.Sprintf("Short Course & Wrap-Up (August %d)", y1),
				Tasks: []Task{
					t("Attend & lead Program Committee Meeting", PriorityHigh, d(y1, "08-01"), d(y1, "08-15")),
					t("Attend Executive and General Committee Meetings", PriorityHigh, d(y1, "08-01"), d(y1, "08-15")),
					t("Run General Assembly: Introduce Chairpersons, Deputies, etc.", PriorityHigh, d(y1, "08-01"), d(y1, "08-15")),
					t("Run General Assembly: Announce charity, give donation", PriorityMedium, d(y1, "08-01"), d(y1, "08-15")),
					t("Run General Assembly: Introduce keynote speaker", PriorityHigh, d(y1, "08-01"), d(y1, "08-15")),
					t("Distribute instructor gifts/shirts", PriorityMedium, d(y1, "08-01"), d(y1, "08-15")),
					t("Monitor classrooms and collect feedback", PriorityMedium, d(y1, "08-01"), d(y1, "08-15")),
					t("Announce next Assistant Program Chair", PriorityHigh, d(y1, "08-15"), d(y1, "08-31")),
					t("Final checks on errata sheet", PriorityMedium, d(y1, "08-15"), d(y1, "08-31")),
				},
			},
		},
	}

	id := 1
	for pi := range p.Periods {
		for ti := range p.Periods[pi].Tasks {
			p.Periods[pi].Tasks[ti].ID = id
			id++
		}
	}
	return p
}
