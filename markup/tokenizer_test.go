package markup

import "testing"

func TestEOFInStartTag(t *testing.T) {
	doc, _, err := ParseString(`<a x="1"`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics, EOFInStartTag, MissingEndTag)
	if doc.Root.Name != "a" {
		t.Fatalf("root = %+v", doc.Root)
	}
	if v, ok := doc.Root.GetAttribute("x"); !ok || v != "1" {
		t.Fatalf("attribute x = %q, %v", v, ok)
	}
}

func TestValuelessAttribute(t *testing.T) {
	doc, _, err := ParseString(`<a x/>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics)
	v, ok := doc.Root.GetAttribute("x")
	if !ok || v != "" {
		t.Fatalf("attribute x = %q, %v, want empty present", v, ok)
	}
}

func TestUnquotedAttributeValue(t *testing.T) {
	doc, _, err := ParseString(`<a x=1/>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics)
	if v, _ := doc.Root.GetAttribute("x"); v != "1" {
		t.Fatalf("attribute x = %q, want %q", v, "1")
	}
}

func TestSpaceRequiredBeforeAttributeName(t *testing.T) {
	doc, _, err := ParseString(`<a x="1"y="2"/>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics, SpaceRequiredBeforeAttributeName)
	if v, _ := doc.Root.GetAttribute("x"); v != "1" {
		t.Fatalf("x = %q", v)
	}
	if v, _ := doc.Root.GetAttribute("y"); v != "2" {
		t.Fatalf("y = %q", v)
	}
}

func TestAttributeValueCharacterReference(t *testing.T) {
	doc, _, err := ParseString(`<a x="1&amp;2"/>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics)
	if v, _ := doc.Root.GetAttribute("x"); v != "1&2" {
		t.Fatalf("x = %q, want %q", v, "1&2")
	}
}

func TestNoiseInStartTagGivesUpAndReparsesAsText(t *testing.T) {
	doc, _, err := ParseString(`<a$>hello</a>`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics, MissingQuote, UnescapedGT)
	if doc.Root.Name != "a" {
		t.Fatalf("root = %+v", doc.Root)
	}
	if doc.Root.TextChunk(0) != "$>hello" {
		t.Fatalf("text = %q, want %q", doc.Root.TextChunk(0), "$>hello")
	}
}

func TestForbiddenCodePointReference(t *testing.T) {
	doc, _, err := ParseString("<a>&#x01;</a>", Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertKinds(t, doc.Diagnostics, ForbiddenCodePointRef)
	if doc.Root.TextChunk(0) != "�" {
		t.Fatalf("text = %q", doc.Root.TextChunk(0))
	}
}
