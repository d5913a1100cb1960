package freedesktop

import "testing"

func TestParseAndGet(t *testing.T) {
	text := "[Desktop Entry]\nType=Application\nName=Test App\nExec=brave --app=https://example.com\n"

	entry, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "Type", want: "Application", ok: true},
		{key: "Name", want: "Test App", ok: true},
		{key: "Exec", want: "brave --app=https://example.com", ok: true},
		{key: "Missing", want: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := entry.Get(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Get(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseMissingHeader(t *testing.T) {
	if _, err := Parse("Name=No header\n"); err == nil {
		t.Fatal("expected error for text without group header")
	}
}

func TestRoundTripPreservesUnknownContent(t *testing.T) {
	text := "[Desktop Entry]\n# generated file\nType=Application\nX-Custom-Key=kept verbatim\n\nName=App\n"

	entry, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := entry.String(); got != text {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, text)
	}
}

func TestSetUpdatesInPlace(t *testing.T) {
	entry, err := Parse("[Desktop Entry]\nName=Old\nType=Application\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entry.Set("Name", "New")
	entry.Set("Icon", "/tmp/icon.png")

	want := "[Desktop Entry]\nName=New\nType=Application\nIcon=/tmp/icon.png\n"
	if got := entry.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestValueMayContainEquals(t *testing.T) {
	entry, err := Parse("[Desktop Entry]\nExec=chromium --app=https://example.com/?q=1\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, ok := entry.Get("Exec")
	if !ok || got != "chromium --app=https://example.com/?q=1" {
		t.Errorf("Get(Exec) = (%q, %v)", got, ok)
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry()
	entry.Set("Name", "Fresh")

	want := "[Desktop Entry]\nName=Fresh\n"
	if got := entry.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
