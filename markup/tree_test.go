package markup

import "testing"

func TestElementTagLocations(t *testing.T) {
	doc, posMap, err := ParseString(`<a><b/></a>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root
	if line, col := root.StartTagLocation(posMap); line != 1 || col != 1 {
		t.Fatalf("root start tag location = %d:%d, want 1:1", line, col)
	}
	if line, col := root.EndTagLocation(posMap); line != 1 || col != 8 {
		t.Fatalf("root end tag location = %d:%d, want 1:8", line, col)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	child := root.Children[0]
	if line, col := child.StartTagLocation(posMap); line != 1 || col != 4 {
		t.Fatalf("child start tag location = %d:%d, want 1:4", line, col)
	}
	if line, col := child.EndTagLocation(posMap); line != 1 || col != 6 {
		t.Fatalf("child end tag location = %d:%d, want 1:6", line, col)
	}
}
