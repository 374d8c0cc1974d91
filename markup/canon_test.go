package markup

import "testing"

func TestCanonicalizeSortsAttributesAtEveryLevel(t *testing.T) {
	doc := mustParse(t, `<a z="1" a="2"><b y="3" x="4"/></a>`)
	c := Canonicalize(doc.Root)
	if c.Attributes[0].Name != "a" || c.Attributes[1].Name != "z" {
		t.Fatalf("root attributes = %+v", c.Attributes)
	}
	if c.Children[0].Attributes[0].Name != "x" || c.Children[0].Attributes[1].Name != "y" {
		t.Fatalf("child attributes = %+v", c.Children[0].Attributes)
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	doc := mustParse(t, `<a z="1" a="2">x<b/>y</a>`)
	once := Canonicalize(doc.Root)
	twice := Canonicalize(once)
	if !Equal(once, twice, CmpOrdered) {
		t.Fatalf("canonicalization not idempotent: %q vs %q", WriteElement(once, OptionCanonical), WriteElement(twice, OptionCanonical))
	}
}

func TestCanonicalizePreservesText(t *testing.T) {
	doc := mustParse(t, `<a z="1" a="2">before<b/>after</a>`)
	c := Canonicalize(doc.Root)
	if c.TextChunk(0) != "before" || c.TextChunk(1) != "after" {
		t.Fatalf("text chunks = %q, %q", c.TextChunk(0), c.TextChunk(1))
	}
}

func TestEqualOrderedRequiresSameChildOrder(t *testing.T) {
	a := mustParse(t, `<r><a/><b/></r>`).Root
	b := mustParse(t, `<r><b/><a/></r>`).Root
	if Equal(a, b, CmpOrdered) {
		t.Fatal("expected ordered comparison to distinguish child order")
	}
	if !Equal(a, b, CmpUnordered) {
		t.Fatal("expected unordered comparison to ignore child order")
	}
}

func TestEqualDetectsAttributeDifference(t *testing.T) {
	a := mustParse(t, `<r x="1"/>`).Root
	b := mustParse(t, `<r x="2"/>`).Root
	if Equal(a, b, CmpOrdered) {
		t.Fatal("expected different attribute values to compare unequal")
	}
}

func TestEqualIgnoresAttributeOrder(t *testing.T) {
	a := mustParse(t, `<r x="1" y="2"/>`).Root
	b := mustParse(t, `<r y="2" x="1"/>`).Root
	if !Equal(a, b, CmpOrdered) {
		t.Fatal("expected attribute order to be insignificant")
	}
}
