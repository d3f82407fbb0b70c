package greeting

import (
	"math/rand"
	"strings"
	"testing"
)

func TestTranslationTableSize(t *testing.T) {
	if len(Translations) != 20 {
		t.Fatalf("Expected 20 translations, got %d", len(Translations))
	}

	seen := make(map[string]bool, len(Translations))
	for _, tr := range Translations {
		if tr.Word == "" || tr.Language == "" {
			t.Errorf("Empty translation entry: %+v", tr)
		}
		if seen[tr.Language] {
			t.Errorf("Duplicate language %q", tr.Language)
		}
		seen[tr.Language] = true
	}
}

func TestTimeOfDayBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},  // 11:59 is still morning
		{12, "Good afternoon"},
		{17, "Good afternoon"}, // 17:59 is still afternoon
		{18, "Good evening"},
		{23, "Good evening"},
	}

	for _, tc := range cases {
		if got := TimeOfDay(tc.hour); got != tc.want {
			t.Errorf("Hour %d: expected %q, got %q", tc.hour, tc.want, got)
		}
	}
}

func TestFirstVisitContainsNameAndTranslation(t *testing.T) {
	tr := Translation{Word: "Hola", Language: "Spanish"}
	msg := FirstVisit(9, "Ada", tr)

	if !strings.Contains(msg, "Ada") {
		t.Errorf("Message missing name: %q", msg)
	}
	if !strings.Contains(msg, "Hola") || !strings.Contains(msg, "Spanish") {
		t.Errorf("Message missing translation marker: %q", msg)
	}
	if !strings.HasPrefix(msg, "Good morning") {
		t.Errorf("Expected morning greeting at hour 9: %q", msg)
	}
}

func TestWelcomeBackContainsNameAndTranslation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := Translation{Word: "Hej", Language: "Swedish"}

	for i := 0; i < 20; i++ {
		msg := WelcomeBack(rng, "Grace", tr)
		if !strings.Contains(msg, "Grace") {
			t.Fatalf("Welcome-back message missing name: %q", msg)
		}
		if !strings.Contains(msg, "Hej") || !strings.Contains(msg, "Swedish") {
			t.Fatalf("Welcome-back message missing translation: %q", msg)
		}
	}
}

func TestWelcomeBackUsesAllTemplates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := Translations[0]

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[WelcomeBack(rng, "X", tr)] = true
	}
	if len(seen) != len(welcomeBackTemplates) {
		t.Errorf("Expected %d distinct templates over many picks, got %d", len(welcomeBackTemplates), len(seen))
	}
}

func TestPickOneUniformCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := []int{1, 2, 3, 4, 5}

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		counts[PickOne(rng, items)]++
	}
	for _, v := range items {
		if counts[v] == 0 {
			t.Errorf("Value %d never picked", v)
		}
	}
}
