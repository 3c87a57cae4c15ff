package render

import "resumeforge/pkg/models"

// renderMinimalist builds the clean grid layout: light header, a 2/3 main
// column (summary, experience on a timeline rule) and a 1/3 side column
// (compressed years timeline, education, skills).
func renderMinimalist(record models.ResumeRecord) *Node {
	doc := NewNode(RoleDocument, "").WithHint("minimalist")

	header := NewNode(RoleSection, "").WithHint("header")
	header.Add(NewNode(RoleHeading, record.FullName))
	if title := headline(record); title != "" {
		header.Add(NewNode(RoleParagraph, title).WithHint("accent"))
	}
	addContacts(header,
		contactNode("email", record.Email),
		contactNode("phone", record.Phone),
		contactNode("location", record.Location),
	)
	doc.Add(header)

	main := NewNode(RoleColumn, "").WithHint("main")
	doc.Add(main)

	if record.Summary != "" {
		about := NewNode(RoleSection, "About Me")
		about.Add(NewNode(RoleParagraph, record.Summary))
		main.Add(about)
	}

	if len(record.Experience) > 0 {
		experience := NewNode(RoleSection, "Experience").WithHint("timeline")
		for _, exp := range record.Experience {
			entry := NewNode(RoleEntry, "").WithHint("timeline")
			entry.Add(NewNode(RoleSubheading, exp.Position))
			entry.Add(NewNode(RoleParagraph, exp.Company).WithHint("accent"))
			if list := bulletList(exp.Description); list != nil {
				entry.Add(list)
			}
			experience.Add(entry)
		}
		main.Add(experience)
	}

	side := NewNode(RoleColumn, "").WithHint("side")
	doc.Add(side)

	if len(record.Experience) > 0 {
		timeline := NewNode(RoleSection, "Timeline")
		for _, exp := range record.Experience {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, exp.Company))
			end := "Now"
			if !exp.Current {
				end = yearOf(exp.EndDate)
			}
			entry.Add(NewNode(RoleDateRange, yearOf(exp.StartDate)+" — "+end))
			timeline.Add(entry)
		}
		side.Add(timeline)
	}

	if len(record.Education) > 0 {
		education := NewNode(RoleSection, "Education")
		for _, edu := range record.Education {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, edu.Institution))
			entry.Add(NewNode(RoleParagraph, edu.Degree))
			education.Add(entry)
		}
		side.Add(education)
	}

	if len(record.Skills) > 0 {
		skills := NewNode(RoleSection, "Skills")
		skills.Add(skillBadges(record.Skills)...)
		side.Add(skills)
	}

	return doc
}
