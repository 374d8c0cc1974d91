package markup

import "testing"

func TestIsNameStartASCII(t *testing.T) {
	cases := map[rune]bool{'a': true, 'Z': true, '_': true, '0': false, '-': false, ' ': false}
	for r, want := range cases {
		if got := isNameStart(r); got != want {
			t.Errorf("isNameStart(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestIsNameContinueASCII(t *testing.T) {
	cases := map[rune]bool{'a': true, '0': true, '-': true, '.': true, ' ': false, '<': false}
	for r, want := range cases {
		if got := isNameContinue(r); got != want {
			t.Errorf("isNameContinue(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestIsForbiddenControlCharacters(t *testing.T) {
	if !isForbidden(0x01) {
		t.Error("0x01 should be forbidden")
	}
	if isForbidden('\t') || isForbidden('\n') || isForbidden('\r') {
		t.Error("tab/newline/cr must not be forbidden")
	}
	if !isForbidden(0x7F) {
		t.Error("0x7F should be forbidden")
	}
}

func TestIsForbiddenNonCharacters(t *testing.T) {
	if !isForbidden(0xFFFE) || !isForbidden(0xFFFF) {
		t.Error("0xFFFE/0xFFFF should be forbidden non-characters")
	}
	if !isForbidden(0x1FFFE) {
		t.Error("0x1FFFE should be forbidden (plane non-character)")
	}
}

func TestIsSurrogate(t *testing.T) {
	if !isSurrogate(0xD800) || !isSurrogate(0xDFFF) {
		t.Error("surrogate range boundaries misclassified")
	}
	if isSurrogate(0xD7FF) || isSurrogate(0xE000) {
		t.Error("non-surrogate code points misclassified")
	}
}

func TestIsNameStartHighCodePoints(t *testing.T) {
	if !isNameStart(0xC0) {
		t.Error("0xC0 should be a name-start character")
	}
	if isNameStart(0x2000) {
		t.Error("0x2000 (a space separator) should not be a name-start character")
	}
}
