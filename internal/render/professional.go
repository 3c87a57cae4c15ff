package render

import "resumeforge/pkg/models"

// renderProfessional builds the classic single-column layout: centered
// header, summary, experience, then education and skills side by side.
func renderProfessional(record models.ResumeRecord) *Node {
	doc := NewNode(RoleDocument, "").WithHint("professional")

	header := NewNode(RoleSection, "").WithHint("header")
	header.Add(NewNode(RoleHeading, record.FullName))
	addContacts(header,
		contactNode("email", record.Email),
		contactNode("phone", record.Phone),
		contactNode("location", record.Location),
		contactNode("linkedin", record.LinkedIn),
		contactNode("website", record.Website),
	)
	doc.Add(header)

	if record.Summary != "" {
		summary := NewNode(RoleSection, "Professional Summary")
		summary.Add(NewNode(RoleParagraph, record.Summary))
		doc.Add(summary)
	}

	if len(record.Experience) > 0 {
		experience := NewNode(RoleSection, "Work Experience")
		for _, exp := range record.Experience {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, exp.Company))
			entry.Add(NewNode(RoleDateRange, FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)))
			entry.Add(NewNode(RoleParagraph, exp.Position).WithHint("strong"))
			if list := bulletList(exp.Description); list != nil {
				entry.Add(list)
			}
			experience.Add(entry)
		}
		doc.Add(experience)
	}

	row := NewNode(RoleRow, "").WithHint("two-up")

	if len(record.Education) > 0 {
		education := NewNode(RoleSection, "Education")
		for _, edu := range record.Education {
			entry := NewNode(RoleEntry, "")
			entry.Add(NewNode(RoleSubheading, edu.Institution))
			degree := edu.Degree
			if edu.FieldOfStudy != "" {
				degree = edu.Degree + ", " + edu.FieldOfStudy
			}
			entry.Add(NewNode(RoleParagraph, degree))
			entry.Add(NewNode(RoleParagraph, edu.GraduationDate).WithHint("muted"))
			education.Add(entry)
		}
		row.Add(NewNode(RoleColumn, "").Add(education))
	}

	if len(record.Skills) > 0 {
		skills := NewNode(RoleSection, "Skills")
		skills.Add(skillBadges(record.Skills)...)
		row.Add(NewNode(RoleColumn, "").Add(skills))
	}

	if len(row.Children) > 0 {
		doc.Add(row)
	}

	return doc
}
