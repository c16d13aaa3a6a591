package record

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/zarlcorp/sivgen/internal/random"
)

// fixedSource replays vals, reduced modulo n.
type fixedSource struct {
	vals []int
	i    int
}

func (s *fixedSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func (s *fixedSource) Uint64() uint64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return uint64(v)
}

var (
	ukPlateRe     = regexp.MustCompile(`^[A-Z]{2} [0-9]{2} [A-Z]{3}$`)
	frenchPlateRe = regexp.MustCompile(`^[A-Z]{2}-[0-9]{3}-[A-Z0-9]{2}$`)
	digitsRe      = regexp.MustCompile(`^[0-9]{8}$`)
)

func TestUKPlatePattern(t *testing.T) {
	g := New(random.NewFaker(1))
	for range 500 {
		if p := g.UKPlate(); !ukPlateRe.MatchString(p) {
			t.Fatalf("UKPlate() = %q, does not match %s", p, ukPlateRe)
		}
	}
}

func TestFrenchPlatePattern(t *testing.T) {
	g := New(random.NewFaker(2))
	sawLetterRegion, sawDigitRegion := false, false
	for range 500 {
		p := g.FrenchPlate()
		if !frenchPlateRe.MatchString(p) {
			t.Fatalf("FrenchPlate() = %q, does not match %s", p, frenchPlateRe)
		}
		region := p[7:]
		if strings.ContainsAny(region, upperChars) {
			sawLetterRegion = true
		}
		if strings.ContainsAny(region, digitChars) {
			sawDigitRegion = true
		}
	}

	if !sawLetterRegion {
		t.Error("region code never drew a letter")
	}
	if !sawDigitRegion {
		t.Error("region code never drew a digit")
	}
}

func TestFrenchPhone(t *testing.T) {
	g := New(nil)
	for range 500 {
		n := g.FrenchPhone()
		if len(n) != 10 {
			t.Fatalf("FrenchPhone() = %q, want 10 characters", n)
		}
		if !slices.Contains(PhonePrefixes, n[:2]) {
			t.Fatalf("FrenchPhone() = %q, unknown prefix %q", n, n[:2])
		}
		if !digitsRe.MatchString(n[2:]) {
			t.Fatalf("FrenchPhone() = %q, suffix is not 8 digits", n)
		}
	}
}

func TestFrenchPhonePrefixUniform(t *testing.T) {
	g := New(random.NewFaker(99))
	const draws = 8000
	counts := make(map[string]int)
	for range draws {
		counts[g.FrenchPhone()[:2]]++
	}

	if len(counts) != len(PhonePrefixes) {
		t.Fatalf("saw %d prefixes, want %d: %v", len(counts), len(PhonePrefixes), counts)
	}

	// expected 1000 per prefix, standard deviation about 30
	want := draws / len(PhonePrefixes)
	for prefix, c := range counts {
		if c < want-200 || c > want+200 {
			t.Errorf("prefix %s drawn %d times, want about %d", prefix, c, want)
		}
	}
}

func TestExactFormatting(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		fn   func(*Generator) string
		want string
	}{
		{"uk zeros", []int{0}, (*Generator).UKPlate, "AA 00 AAA"},
		{"uk max", []int{25}, (*Generator).UKPlate, "ZZ 55 ZZZ"},
		{"french zeros", []int{0}, (*Generator).FrenchPlate, "AA-000-AA"},
		{"french region digits", []int{0, 0, 1, 2, 3, 35, 26}, (*Generator).FrenchPlate, "AA-123-90"},
		{"phone zeros", []int{0}, (*Generator).FrenchPhone, "0600000000"},
		{"phone last prefix", []int{7, 1, 2, 3, 4, 5, 6, 7, 8}, (*Generator).FrenchPhone, "0912345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fixedSource{vals: tt.vals})
			if got := tt.fn(g); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"two tokens", "Alice Smith", "alice.smith@example.com", true},
		{"middle name dropped", "Jean Paul Sartre", "jean.sartre@example.com", true},
		{"upper case", "BOB DYLAN", "bob.dylan@example.com", true},
		{"extra whitespace", "  Ada \t  Lovelace  ", "ada.lovelace@example.com", true},
		{"single token", "Bob", "", false},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Email(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestName(t *testing.T) {
	g := New(random.NewFaker(5))
	for range 50 {
		name := g.Name()
		if parts := strings.Fields(name); len(parts) != 2 {
			t.Fatalf("Name() = %q, want two words", name)
		}
		if _, ok := Email(name); !ok {
			t.Errorf("Name() = %q, yields no email", name)
		}
	}
}

func TestNameFollowsSource(t *testing.T) {
	a := New(random.NewFaker(31))
	b := New(random.NewFaker(31))
	for range 20 {
		if x, y := a.Name(), b.Name(); x != y {
			t.Fatalf("same seed gave %q and %q", x, y)
		}
	}
}

func TestNameRandomness(t *testing.T) {
	g := New(nil)
	seen := make(map[string]bool)
	for range 20 {
		seen[g.Name()] = true
	}
	// with thousands of combinations, 20 draws should rarely repeat
	if len(seen) < 10 {
		t.Errorf("expected variety in names, only saw %d distinct", len(seen))
	}
}

func TestShuffleZeroSource(t *testing.T) {
	g := New(&fixedSource{vals: []int{0}})
	s := []string{"A", "B", "C"}
	g.Shuffle(s)
	if want := []string{"B", "C", "A"}; !slices.Equal(s, want) {
		t.Errorf("Shuffle = %v, want %v", s, want)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	g := New(random.NewFaker(11))
	in := []string{"a", "b", "b", "c", "d", "e", "f"}
	for range 100 {
		s := slices.Clone(in)
		g.Shuffle(s)
		slices.Sort(s)
		if !slices.Equal(in, s) {
			t.Fatalf("shuffle changed the elements: %v", s)
		}
	}
}

func TestShuffleUniform(t *testing.T) {
	g := New(random.NewFaker(3))
	const draws = 6000
	counts := make(map[string]int)
	for range draws {
		s := []string{"A", "B", "C"}
		g.Shuffle(s)
		counts[strings.Join(s, "")]++
	}

	if len(counts) != 6 {
		t.Fatalf("saw %d orderings, want all 6: %v", len(counts), counts)
	}

	// expected 1000 per ordering, standard deviation about 29
	for perm, c := range counts {
		if c < draws/6-200 || c > draws/6+200 {
			t.Errorf("ordering %s seen %d times, want about %d", perm, c, draws/6)
		}
	}
}

func TestShuffleShortSlices(t *testing.T) {
	g := New(nil)
	var empty []string
	g.Shuffle(empty)
	if len(empty) != 0 {
		t.Errorf("empty slice grew: %v", empty)
	}

	one := []string{"x"}
	g.Shuffle(one)
	if one[0] != "x" {
		t.Errorf("single element changed: %v", one)
	}
}
