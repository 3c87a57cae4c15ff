package render

// Role tags a node in the rendered document tree
type Role string

const (
	RoleDocument   Role = "document"
	RoleColumn     Role = "column"
	RoleRow        Role = "row"
	RoleSection    Role = "section"
	RoleHeading    Role = "heading"
	RoleSubheading Role = "subheading"
	RoleParagraph  Role = "paragraph"
	RoleList       Role = "list"
	RoleItem       Role = "item"
	RoleBadge      Role = "badge"
	RoleEntry      Role = "entry"
	RoleContact    Role = "contact"
	RoleDateRange  Role = "daterange"
)

// Node is one element of the rendered document tree. The tree is
// language-neutral: Text carries content, Hint carries a style annotation
// (e.g. "sidebar", "accent", "timeline"), never markup. Children preserve
// input order.
type Node struct {
	Role     Role    `json:"role"`
	Text     string  `json:"text,omitempty"`
	Hint     string  `json:"hint,omitempty"`
	Link     string  `json:"link,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// NewNode creates a node with the given role and text
func NewNode(role Role, text string) *Node {
	return &Node{Role: role, Text: text}
}

// WithHint sets the style hint and returns the node for chaining
func (n *Node) WithHint(hint string) *Node {
	n.Hint = hint
	return n
}

// WithLink sets the link target and returns the node for chaining
func (n *Node) WithLink(link string) *Node {
	n.Link = link
	return n
}

// Add appends children and returns the node for chaining
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first descendant (depth-first, self included) matching
// the predicate, or nil
func (n *Node) Find(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindSection returns the first section node with the given heading text
func (n *Node) FindSection(title string) *Node {
	return n.Find(func(node *Node) bool {
		return node.Role == RoleSection && node.Text == title
	})
}

// Walk visits every node depth-first, self first
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
