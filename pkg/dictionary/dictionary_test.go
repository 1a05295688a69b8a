package dictionary

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseLocale(t *testing.T) {
	testCases := []struct {
		tag      string
		expected string
	}{
		{"en-US", "en_US"},
		{"en_US", "en_US"},
		{"EN-us", "en_US"},
		{"fr", "fr"},
		{"", ""},
		{"  de-DE ", "de_DE"},
	}

	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			if got := ParseLocale(tc.tag).String(); got != tc.expected {
				t.Errorf("ParseLocale(%q) = %q, want %q", tc.tag, got, tc.expected)
			}
		})
	}
}

func TestLocaleIsZero(t *testing.T) {
	if !ParseLocale("").IsZero() {
		t.Error("empty tag should parse to zero locale")
	}
	if ParseLocale("en-US").IsZero() {
		t.Error("en-US should not be zero")
	}
}

func TestSetBasics(t *testing.T) {
	set := NewSet()
	set.AddWord("the", 60000)
	set.AddWord("then", 9000)
	set.AddBigram("of", "the", 200)
	set.MarkOffensive("then")

	if got := set.Frequency("the"); got != 60000 {
		t.Errorf("Frequency(the) = %d, want 60000", got)
	}
	if got := set.Frequency("missing"); got != 0 {
		t.Errorf("Frequency(missing) = %d, want 0", got)
	}
	if !set.HasPrefix("th") {
		t.Error("HasPrefix(th) should hold")
	}
	if set.HasPrefix("x") {
		t.Error("HasPrefix(x) should not hold")
	}
	if got := set.BigramWeight("of", "the"); got != 200 {
		t.Errorf("BigramWeight(of, the) = %d, want 200", got)
	}
	if got := set.BigramWeight("the", "of"); got != 0 {
		t.Errorf("BigramWeight(the, of) = %d, want 0", got)
	}
	if !set.IsOffensive("then") || set.IsOffensive("the") {
		t.Error("offensive flags wrong")
	}
	if got := set.MaxFrequency(); got != 60000 {
		t.Errorf("MaxFrequency = %d, want 60000", got)
	}
	if got := set.Size(); got != 2 {
		t.Errorf("Size = %d, want 2", got)
	}
}

func TestSetAlphabet(t *testing.T) {
	set := NewSet()
	set.AddWord("ab", 1)

	runes := set.Alphabet()
	if len(runes) != 2 {
		t.Fatalf("Alphabet size = %d, want 2", len(runes))
	}
}

// writeChunk builds one binary chunk file: int32 count, then per word
// uint16 length, bytes, uint16 rank.
func writeChunk(t *testing.T, path string, words []string) {
	t.Helper()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, int32(len(words))); err != nil {
		t.Fatal(err)
	}
	for i, word := range words {
		if err := binary.Write(&buf, binary.LittleEndian, uint16(len(word))); err != nil {
			t.Fatal(err)
		}
		buf.WriteString(word)
		if err := binary.Write(&buf, binary.LittleEndian, uint16(i+1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirChunkFormat(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, filepath.Join(dir, "dict_0001.bin"), []string{"the", "then"})

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	// rank 1 maps to 65535, rank 2 to 65534
	if got := set.Frequency("the"); got != 65535 {
		t.Errorf("Frequency(the) = %d, want 65535", got)
	}
	if got := set.Frequency("then"); got != 65534 {
		t.Errorf("Frequency(then) = %d, want 65534", got)
	}
}

func TestLoadDirTextFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"words.txt":     "the 60000\nthen 9000\nbadline\nneg -3\n",
		"bigrams.txt":   "of the 200\nshort line\n",
		"offensive.txt": "# comment\nslur\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := set.Frequency("the"); got != 60000 {
		t.Errorf("Frequency(the) = %d, want 60000", got)
	}
	if set.Frequency("badline") != 0 || set.Frequency("neg") != 0 {
		t.Error("malformed lines should be skipped")
	}
	if got := set.BigramWeight("of", "the"); got != 200 {
		t.Errorf("BigramWeight = %d, want 200", got)
	}
	if !set.IsOffensive("slur") {
		t.Error("slur should be flagged offensive")
	}
	if set.IsOffensive("# comment") {
		t.Error("comment lines should be skipped")
	}
}

func TestLoadDirMissing(t *testing.T) {
	set, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should yield empty set, got error: %v", err)
	}
	if set.Size() != 0 {
		t.Errorf("Size = %d, want 0", set.Size())
	}
}

func TestFacilitatorResetAndWait(t *testing.T) {
	dataDir := t.TempDir()
	localeDir := filepath.Join(dataDir, "en_US")
	if err := os.MkdirAll(localeDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(localeDir, "words.txt"), []byte("the 60000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFacilitator(dataDir)

	// nothing pending yet
	if err := f.WaitForLoad(time.Second); err != nil {
		t.Fatalf("WaitForLoad with no pending load: %v", err)
	}
	if f.ActiveSet() != nil {
		t.Error("ActiveSet should be nil before first Reset")
	}

	locale := ParseLocale("en-US")
	f.Reset(locale)
	if err := f.WaitForLoad(5 * time.Second); err != nil {
		t.Fatalf("WaitForLoad: %v", err)
	}
	if got := f.CurrentLocale(); got != locale {
		t.Errorf("CurrentLocale = %v, want %v", got, locale)
	}
	set := f.ActiveSet()
	if set == nil {
		t.Fatal("ActiveSet is nil after load")
	}
	if got := set.Frequency("the"); got != 60000 {
		t.Errorf("Frequency(the) = %d, want 60000", got)
	}
}

func TestFacilitatorSwitchReloads(t *testing.T) {
	dataDir := t.TempDir()
	for locale, line := range map[string]string{"en_US": "the 60000\n", "fr_FR": "les 50000\n"} {
		dir := filepath.Join(dataDir, locale)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "words.txt"), []byte(line), 0644); err != nil {
			t.Fatal(err)
		}
	}

	f := NewFacilitator(dataDir)

	f.Reset(ParseLocale("en-US"))
	if err := f.WaitForLoad(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	f.Reset(ParseLocale("fr-FR"))
	if err := f.WaitForLoad(5 * time.Second); err != nil {
		t.Fatal(err)
	}

	set := f.ActiveSet()
	if set.Frequency("les") != 50000 {
		t.Error("fr_FR dictionary should be active")
	}
	if set.Frequency("the") != 0 {
		t.Error("en_US words must not leak into fr_FR set")
	}
}
