package markup

import "testing"

func TestQueryFindMatchesLiteralPath(t *testing.T) {
	doc := mustParse(t, `<a><b><c/><c/></b><b/></a>`)
	matches := Compile("b/c").Find(doc.Root)
	if len(matches) != 2 {
		t.Fatalf("matches = %+v, want 2", matches)
	}
}

func TestQueryFindWildcard(t *testing.T) {
	doc := mustParse(t, `<a><b/><c/><d/></a>`)
	matches := Compile("*").Find(doc.Root)
	if len(matches) != 3 {
		t.Fatalf("matches = %+v, want 3", matches)
	}
}

func TestQueryFindFirst(t *testing.T) {
	doc := mustParse(t, `<a><b/><b/></a>`)
	first := Compile("b").FindFirst(doc.Root)
	if first == nil || first.Name != "b" {
		t.Fatalf("first = %+v", first)
	}
}

func TestQueryFindFirstNoMatch(t *testing.T) {
	doc := mustParse(t, `<a><b/></a>`)
	if m := Compile("z").FindFirst(doc.Root); m != nil {
		t.Fatalf("FindFirst = %+v, want nil", m)
	}
}

func TestQueryEmptyPathReturnsRoot(t *testing.T) {
	doc := mustParse(t, `<a/>`)
	matches := Compile("").Find(doc.Root)
	if len(matches) != 1 || matches[0] != doc.Root {
		t.Fatalf("matches = %+v, want [root]", matches)
	}
}
