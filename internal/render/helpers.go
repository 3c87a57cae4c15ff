package render

import (
	"strings"

	"resumeforge/pkg/models"
)

// FormatDateRange renders the period of a work experience entry. A current
// position always reads "Present" regardless of its stored end date.
func FormatDateRange(startDate, endDate string, current bool) string {
	if current {
		return startDate + " – Present"
	}
	return startDate + " – " + endDate
}

// SplitBullets turns a newline-joined description into one bullet per
// non-empty line, trimming surrounding whitespace
func SplitBullets(description string) []string {
	var bullets []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// yearOf extracts the leading year from a date string like "2021-06" or "2021"
func yearOf(date string) string {
	if i := strings.IndexAny(date, "-/"); i >= 0 {
		return date[:i]
	}
	return date
}

// headline returns the position of the first experience entry, the same
// title the original sidebar shows under the name
func headline(record models.ResumeRecord) string {
	if len(record.Experience) > 0 {
		return record.Experience[0].Position
	}
	return ""
}

// contactNode builds a contact line item, or nil when the value is empty
func contactNode(kind, value string) *Node {
	if value == "" {
		return nil
	}
	return NewNode(RoleContact, value).WithHint(kind)
}

// addContacts appends the non-nil contact nodes to parent
func addContacts(parent *Node, nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			parent.Add(n)
		}
	}
}

// bulletList builds a list node from a description, or nil when the
// description has no non-empty lines
func bulletList(description string) *Node {
	bullets := SplitBullets(description)
	if len(bullets) == 0 {
		return nil
	}
	list := NewNode(RoleList, "")
	for _, b := range bullets {
		list.Add(NewNode(RoleItem, b))
	}
	return list
}

// skillBadges builds badge nodes in input order, one per skill
func skillBadges(skills []models.Skill) []*Node {
	badges := make([]*Node, 0, len(skills))
	for _, s := range skills {
		badges = append(badges, NewNode(RoleBadge, s.Name))
	}
	return badges
}
