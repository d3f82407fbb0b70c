// Package greeting holds the static greeting data: the hello translation
// table, time-of-day templates, and welcome-back templates, plus the one
// random-selection primitive they all share.
package greeting

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/greetburst/constant"
)

// Translation is a "hello" word with its language name.
type Translation struct {
	Word     string
	Language string
}

// Translations is the fixed 20-entry hello table.
var Translations = []Translation{
	{"Hola", "Spanish"},
	{"Bonjour", "French"},
	{"Hallo", "German"},
	{"Ciao", "Italian"},
	{"Olá", "Portuguese"},
	{"Konnichiwa", "Japanese"},
	{"Nǐ hǎo", "Mandarin"},
	{"Annyeong", "Korean"},
	{"Namaste", "Hindi"},
	{"Salaam", "Arabic"},
	{"Privet", "Russian"},
	{"Hej", "Swedish"},
	{"Hei", "Norwegian"},
	{"Merhaba", "Turkish"},
	{"Szia", "Hungarian"},
	{"Ahoj", "Czech"},
	{"Cześć", "Polish"},
	{"Yassou", "Greek"},
	{"Shalom", "Hebrew"},
	{"Jambo", "Swahili"},
}

// welcomeBackTemplates take (name, word, language) in that order.
var welcomeBackTemplates = []string{
	"Welcome back, %s! %q — that's hello in %s!",
	"%s! Great to see you again. Today's hello: %q (%s).",
	"Look who's back — %s! Here's %q, which is hello in %s.",
	"Hello again, %s! Or as they say: %q (%s).",
}

// PickOne returns a uniformly random element of items.
func PickOne[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// PickTranslation picks a random entry from the hello table.
func PickTranslation(rng *rand.Rand) Translation {
	return PickOne(rng, Translations)
}

// TimeOfDay maps a local hour to the greeting word: morning before 12:00,
// afternoon before 18:00, evening otherwise.
func TimeOfDay(hour int) string {
	switch {
	case hour < constant.MorningEndHour:
		return "Good morning"
	case hour < constant.AfternoonEndHour:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// FirstVisit builds the time-of-day greeting line.
func FirstVisit(hour int, name string, tr Translation) string {
	return fmt.Sprintf("%s, %s! %q — that's hello in %s!", TimeOfDay(hour), name, tr.Word, tr.Language)
}

// WelcomeBack builds a returning-visitor line from a random template.
func WelcomeBack(rng *rand.Rand, name string, tr Translation) string {
	tpl := PickOne(rng, welcomeBackTemplates)
	return fmt.Sprintf(tpl, name, tr.Word, tr.Language)
}
