package markup

import "strings"

// Query is a compiled path expression: a sequence of steps separated by
// "/", each either a literal element name or "*" for any name,
// evaluated against a tree with Find. MicroXML has no namespaces,
// predicates, or axes to support, so a query is just a path of names --
// there is no need for a full XPath evaluator here (see DESIGN.md).
type Query struct {
	steps []string
}

// Compile parses a "/"-separated path, e.g. "a/b/*".
func Compile(path string) Query {
	path = strings.Trim(path, "/")
	if path == "" {
		return Query{}
	}
	return Query{steps: strings.Split(path, "/")}
}

// Find returns every element reachable from root by following the
// query's steps.
func (q Query) Find(root *Element) []*Element {
	if root == nil {
		return nil
	}
	current := []*Element{root}
	for _, step := range q.steps {
		var next []*Element
		for _, e := range current {
			for _, c := range e.Children {
				if step == "*" || c.Name == step {
					next = append(next, c)
				}
			}
		}
		current = next
	}
	return current
}

// FindFirst returns the first match, or nil.
func (q Query) FindFirst(root *Element) *Element {
	matches := q.Find(root)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
