package topics

import (
	"fmt"

	"github.com/abhisek/grammiz/internal/quiz"
)

// possessivpronomen drills possessive pronouns (mein, dein, sein, ihr...)
// across Nominativ, Akkusativ and Dativ, plus Genitiv at B1.
type possessivpronomen struct{}

var possessivContexts = []string{
	"travel and holidays",
	"work and office life",
	"daily routine",
	"shopping and fashion",
	"health and sport",
	"education and school",
	"technology",
	"family and friends",
	"food and cooking",
	"city life",
}

func (possessivpronomen) Metadata() Topic {
	return Topic{
		ID:          "possessivpronomen",
		Title:       "Possessive Pronouns",
		Description: "Mein, dein, sein, ihr...",
		Icon:        "👤",
	}
}

func (possessivpronomen) BuildPrompt(level quiz.UserLevel) string {
	context := pickContext(possessivContexts)

	if level == quiz.LevelB1 {
		return fmt.Sprintf(`Context: %s
Create %d CHALLENGING gap-fill sentences practicing German possessive pronouns (Possessivpronomen) for B1 learners.
Rules:
1. Sentences must suit B1 level, set in the context above, longer and more complex.
2. Use subordinate clauses (Nebensätze), relative clauses (Relativsätze) and conjunctions (weil, dass, wenn, obwohl).
3. Include the Genitiv case occasionally alongside Nominativ, Akkusativ and Dativ.
4. Keep the vocabulary at B1 level.
5. The gap's answer must be exactly one possessive pronoun form.`, context, SessionSize)
	}

	return fmt.Sprintf(`Context: %s
Create %d gap-fill sentences practicing German possessive pronouns (Possessivpronomen) for A2 learners.
Rules:
1. Sentences must suit A2 level, set in the context above.
2. Mix the Nominativ, Akkusativ and Dativ cases.
3. Keep the sentences short and clear, one clause each.
4. The gap's answer must be exactly one possessive pronoun form.`, context, SessionSize)
}

func (possessivpronomen) FallbackQuestions(level quiz.UserLevel) []quiz.Question {
	pool := possessivPoolA2
	if level == quiz.LevelB1 {
		pool = append(append([]quiz.Question{}, possessivPoolB1...), possessivPoolA2...)
	}
	return sized(pool)
}

var possessivPoolA2 = []quiz.Question{
	{ID: 1, PreGap: "Das ist", PostGap: "Buch.", Answer: "mein", Translation: "That is my book.", Hint: "ich (Nominativ)"},
	{ID: 2, PreGap: "Ist das", PostGap: "Katze?", Answer: "deine", Translation: "Is that your cat?", Hint: "du (Nominativ)"},
	{ID: 3, PreGap: "Wir besuchen", PostGap: "Oma.", Answer: "unsere", Translation: "We are visiting our grandma.", Hint: "wir (Akkusativ)"},
	{ID: 4, PreGap: "Herr Müller, wo ist", PostGap: "Auto?", Answer: "Ihr", Translation: "Mr. Müller, where is your car?", Hint: "Sie (Nominativ)"},
	{ID: 5, PreGap: "Sie gibt", PostGap: "Bruder ein Geschenk.", Answer: "ihrem", Translation: "She gives her brother a present.", Hint: "sie (Dativ)"},
	{ID: 6, PreGap: "Wo wohnt", PostGap: "Familie?", Answer: "eure", Translation: "Where does your family live?", Hint: "ihr (Nominativ)"},
	{ID: 7, PreGap: "Er sucht", PostGap: "Schlüssel.", Answer: "seinen", Translation: "He is looking for his key.", Hint: "er (Akkusativ)"},
	{ID: 8, PreGap: "Das Kind spielt mit", PostGap: "Ball.", Answer: "seinem", Translation: "The child plays with its ball.", Hint: "es (Dativ)"},
	{ID: 9, PreGap: "Ich helfe", PostGap: "Mutter.", Answer: "meiner", Translation: "I am helping my mother.", Hint: "ich (Dativ)"},
	{ID: 10, PreGap: "Kennst du", PostGap: "Lehrer?", Answer: "seinen", Translation: "Do you know his teacher?", Hint: "er (Akkusativ)"},
	{ID: 11, PreGap: "Wir essen", PostGap: "Apfel.", Answer: "unseren", Translation: "We are eating our apple.", Hint: "wir (Akkusativ)"},
	{ID: 12, PreGap: "Hast du", PostGap: "Hausaufgaben gemacht?", Answer: "deine", Translation: "Have you done your homework?", Hint: "du (Akkusativ)"},
	{ID: 13, PreGap: "Sie liebt", PostGap: "Hund.", Answer: "ihren", Translation: "She loves her dog.", Hint: "sie (Akkusativ)"},
	{ID: 14, PreGap: "Lisa, nimm", PostGap: "Tasche!", Answer: "deine", Translation: "Lisa, take your bag!", Hint: "du (Akkusativ)"},
	{ID: 15, PreGap: "Die Schüler öffnen", PostGap: "Bücher.", Answer: "ihre", Translation: "The pupils open their books.", Hint: "sie plural (Akkusativ)"},
	{ID: 16, PreGap: "Ich fahre mit", PostGap: "Fahrrad.", Answer: "meinem", Translation: "I ride my bike.", Hint: "ich (Dativ)"},
	{ID: 17, PreGap: "Wir gratulieren", PostGap: "Vater.", Answer: "unserem", Translation: "We congratulate our father.", Hint: "wir (Dativ)"},
	{ID: 18, PreGap: "Ist das", PostGap: "Stift?", Answer: "dein", Translation: "Is that your pen?", Hint: "du (Nominativ)"},
	{ID: 19, PreGap: "Sie besuchen", PostGap: "Freunde.", Answer: "ihre", Translation: "They are visiting their friends.", Hint: "sie plural (Akkusativ)"},
	{ID: 20, PreGap: "Er dankt", PostGap: "Lehrerin.", Answer: "seiner", Translation: "He thanks his teacher.", Hint: "er (Dativ)"},
}

var possessivPoolB1 = []quiz.Question{
	{ID: 101, PreGap: "Wegen", PostGap: "Krankheit konnte er nicht kommen.", Answer: "seiner", Translation: "He could not come because of his illness.", Hint: "er (Genitiv, wegen + Gen)"},
	{ID: 102, PreGap: "Während", PostGap: "Urlaubs hat es viel geregnet.", Answer: "unseres", Translation: "It rained a lot during our holiday.", Hint: "wir (Genitiv)"},
	{ID: 103, PreGap: "Ich weiß nicht, ob ich", PostGap: "Meinung ändern soll.", Answer: "meine", Translation: "I don't know whether I should change my opinion.", Hint: "ich (Akkusativ)"},
	{ID: 104, PreGap: "Das ist die Frau, die", PostGap: "Mann sucht.", Answer: "ihren", Translation: "That is the woman who is looking for her husband.", Hint: "sie (Akkusativ)"},
	{ID: 105, PreGap: "Trotz", PostGap: "Bemühungen war der Erfolg klein.", Answer: "ihrer", Translation: "Despite their efforts, the success was small.", Hint: "sie plural (Genitiv)"},
}
