package render

import "resumeforge/pkg/models"

// renderModern builds the two-column layout: identity, contact, skills and
// education in a dark sidebar; profile, experience and projects in the main
// column.
func renderModern(record models.ResumeRecord) *Node {
	doc := NewNode(RoleDocument, "").WithHint("modern")

	sidebar := NewNode(RoleColumn, "").WithHint("sidebar")
	doc.Add(sidebar)

	identity := NewNode(RoleSection, "").WithHint("identity")
	identity.Add(NewNode(RoleHeading, record.FullName))
	title := headline(record)
	if title == "" {
		title = "Professional Title"
	}
	identity.Add(NewNode(RoleParagraph, title).WithHint("accent"))
	sidebar.Add(identity)

	contact := NewNode(RoleSection, "").WithHint("contact")
	addContacts(contact,
		contactNode("email", record.Email),
		contactNode("phone", record.Phone),
		contactNode("location", record.Location),
		contactNode("website", record.Website),
		contactNode("linkedin", record.LinkedIn),
	)
	if len(contact.Children) > 0 {
		sidebar.Add(contact)
	}

	if len(record.Skills) > 0 {
		skills := NewNode(RoleSection, "Skills")
		skills.Add(skillBadges(record.Skills)...)
		sidebar.Add(skills)
	}

	if len(record.Education) > 0 {
		education := NewNode(RoleSection, "Education")
		for _, edu := range record.Education {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, edu.Institution))
			entry.Add(NewNode(RoleParagraph, edu.Degree).WithHint("accent"))
			entry.Add(NewNode(RoleParagraph, edu.GraduationDate).WithHint("muted"))
			education.Add(entry)
		}
		sidebar.Add(education)
	}

	main := NewNode(RoleColumn, "").WithHint("main")
	doc.Add(main)

	if record.Summary != "" {
		profile := NewNode(RoleSection, "Profile")
		profile.Add(NewNode(RoleParagraph, record.Summary))
		main.Add(profile)
	}

	if len(record.Experience) > 0 {
		experience := NewNode(RoleSection, "Experience")
		for _, exp := range record.Experience {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, exp.Position))
			entry.Add(NewNode(RoleDateRange, FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)))
			entry.Add(NewNode(RoleParagraph, exp.Company).WithHint("accent"))
			if list := bulletList(exp.Description); list != nil {
				entry.Add(list)
			}
			experience.Add(entry)
		}
		main.Add(experience)
	}

	if len(record.Projects) > 0 {
		projects := NewNode(RoleSection, "Projects")
		for _, proj := range record.Projects {
			entry := NewNode(RoleEntry, "")
			heading := NewNode(RoleSubheading, proj.Name)
			if proj.Link != "" {
				heading.WithLink(proj.Link)
			}
			entry.Add(heading)
			if proj.Description != "" {
				entry.Add(NewNode(RoleParagraph, proj.Description))
			}
			projects.Add(entry)
		}
		main.Add(projects)
	}

	return doc
}
