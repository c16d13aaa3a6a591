// Package record formats synthetic registration plates, phone numbers and
// email addresses. It performs no I/O; randomness comes from a random.Source.
package record

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/zarlcorp/sivgen/internal/random"
)

// Generator formats random records from a Source.
type Generator struct {
	src  random.Source
	fake *gofakeit.Faker
}

// New creates a generator. A nil source falls back to crypto/rand.
func New(src random.Source) *Generator {
	if src == nil {
		src = random.Crypto{}
	}
	return &Generator{src: src, fake: gofakeit.NewFaker(src, false)}
}

// UKPlate returns a plate in the form "LL DD LLL".
func (g *Generator) UKPlate() string {
	var b strings.Builder
	b.Grow(9)
	g.writeN(&b, upperChars, 2)
	b.WriteByte(' ')
	g.writeN(&b, digitChars, 2)
	b.WriteByte(' ')
	g.writeN(&b, upperChars, 3)
	return b.String()
}

// FrenchPlate returns a plate in the form "LL-DDD-RR" where RR is an
// alphanumeric region code.
func (g *Generator) FrenchPlate() string {
	var b strings.Builder
	b.Grow(9)
	g.writeN(&b, upperChars, 2)
	b.WriteByte('-')
	g.writeN(&b, digitChars, 3)
	b.WriteByte('-')
	g.writeN(&b, regionChars, 2)
	return b.String()
}

// FrenchPhone returns a 10 digit mobile number starting with one of
// PhonePrefixes.
func (g *Generator) FrenchPhone() string {
	var b strings.Builder
	b.Grow(10)
	b.WriteString(g.pick(PhonePrefixes))
	g.writeN(&b, digitChars, 8)
	return b.String()
}

// Name returns a random "First Last" full name. Multi-word first or last
// names are cut to their first word so every name has exactly two.
func (g *Generator) Name() string {
	return firstWord(g.fake.FirstName()) + " " + firstWord(g.fake.LastName())
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}

// Shuffle permutes s in place using Fisher-Yates, so every ordering is
// equally likely given a uniform source.
func (g *Generator) Shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Email derives "first.last@example.com" from a full name using its first
// and last whitespace separated tokens. ok is false for names with fewer
// than two tokens.
func Email(name string) (email string, ok bool) {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) < 2 {
		return "", false
	}
	return parts[0] + "." + parts[len(parts)-1] + "@" + EmailDomain, true
}

func (g *Generator) writeN(b *strings.Builder, chars string, n int) {
	for range n {
		b.WriteByte(chars[g.src.IntN(len(chars))])
	}
}

func (g *Generator) pick(s []string) string {
	return s[g.src.IntN(len(s))]
}
