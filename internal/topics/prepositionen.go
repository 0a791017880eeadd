package topics

import (
	"fmt"

	"github.com/abhisek/grammiz/internal/quiz"
)

// prepositionen drills prepositions: Dativ and two-way prepositions at A2,
// plus the Genitiv prepositions (wegen, trotz, während) at B1.
type prepositionen struct{}

var prepositionContexts = []string{
	"finding your way in the city",
	"travel plans",
	"daily commuting",
	"home and location",
	"work and meetings",
	"appointments",
	"holiday memories",
}

func (prepositionen) Metadata() Topic {
	return Topic{
		ID:          "prepositionen",
		Title:       "Prepositions",
		Description: "Aus, bei, mit, nach, von, zu...",
		Icon:        "📍",
	}
}

func (prepositionen) BuildPrompt(level quiz.UserLevel) string {
	context := pickContext(prepositionContexts)

	if level == quiz.LevelB1 {
		return fmt.Sprintf(`Context: %s
Create %d medium-difficulty gap-fill sentences practicing German prepositions (all cases) for B1 learners.
Focus prepositions: wegen, trotz, während (Genitiv), plus the Dativ and Akkusativ prepositions.
Rules:
1. Sentences must suit B1 level, set in the context above, and be more complex.
2. The Genitiv prepositions (wegen, trotz) must appear.
3. The gap's answer must be ONLY the preposition.
4. The hint must name the governing case (Dativ/Akkusativ/Genitiv).`, context, SessionSize)
	}

	return fmt.Sprintf(`Context: %s
Create %d gap-fill sentences practicing German Dativ prepositions (Präpositionen mit Dativ) and two-way prepositions (Wechselpräpositionen) for A2 learners.
Focus prepositions: aus, bei, mit, nach, seit, von, zu, in, an, auf.
Rules:
1. Sentences must suit A2 level, set in the context above.
2. The gap's answer must be ONLY the preposition.
3. The hint must name the governing case (Dativ/Akkusativ).`, context, SessionSize)
}

func (prepositionen) FallbackQuestions(level quiz.UserLevel) []quiz.Question {
	pool := prepositionPoolA2
	if level == quiz.LevelB1 {
		pool = append(append([]quiz.Question{}, prepositionPoolB1...), prepositionPoolA2...)
	}
	return sized(pool)
}

var prepositionPoolA2 = []quiz.Question{
	{ID: 201, PreGap: "Ich komme", PostGap: "der Türkei.", Answer: "aus", Translation: "I come from Turkey.", Hint: "Dativ (origin)"},
	{ID: 202, PreGap: "Er fährt", PostGap: "dem Bus zur Arbeit.", Answer: "mit", Translation: "He takes the bus to work.", Hint: "Dativ (means)"},
	{ID: 203, PreGap: "Wir sind", PostGap: "Hause.", Answer: "zu", Translation: "We are at home. (fixed phrase: zu Hause)", Hint: "Dativ (location)"},
	{ID: 204, PreGap: "Der Zug fährt", PostGap: "Berlin.", Answer: "nach", Translation: "The train goes to Berlin.", Hint: "Dativ (cities and countries)"},
	{ID: 205, PreGap: "Das Geschenk ist", PostGap: "dich.", Answer: "für", Translation: "The present is for you.", Hint: "Akkusativ"},
	{ID: 206, PreGap: "Der Tisch steht", PostGap: "dem Fenster.", Answer: "neben", Translation: "The table stands next to the window.", Hint: "Dativ (location)"},
	{ID: 207, PreGap: "Ich warte", PostGap: "den Bus.", Answer: "auf", Translation: "I am waiting for the bus.", Hint: "Akkusativ (warten auf)"},
	{ID: 208, PreGap: "Er wohnt", PostGap: "seinem Onkel.", Answer: "bei", Translation: "He lives at his uncle's.", Hint: "Dativ"},
	{ID: 209, PreGap: "Wir gehen", PostGap: "den Park.", Answer: "in", Translation: "We are going into the park.", Hint: "Akkusativ (direction)"},
	{ID: 210, PreGap: "Das Buch liegt", PostGap: "dem Tisch.", Answer: "auf", Translation: "The book lies on the table.", Hint: "Dativ (location)"},
	{ID: 211, PreGap: "Sie kommt", PostGap: "München.", Answer: "aus", Translation: "She comes from Munich.", Hint: "Dativ"},
	{ID: 212, PreGap: "Wir sprechen", PostGap: "das Wetter.", Answer: "über", Translation: "We are talking about the weather.", Hint: "Akkusativ"},
	{ID: 213, PreGap: "Er geht", PostGap: "dem Arzt.", Answer: "zu", Translation: "He is going to the doctor.", Hint: "Dativ (towards a person)"},
	{ID: 214, PreGap: "Ich lerne Deutsch", PostGap: "zwei Jahren.", Answer: "seit", Translation: "I have been learning German for two years.", Hint: "Dativ (time)"},
	{ID: 215, PreGap: "Ich trinke Kaffee", PostGap: "Zucker.", Answer: "ohne", Translation: "I drink coffee without sugar.", Hint: "Akkusativ"},
	{ID: 216, PreGap: "Das Bild hängt", PostGap: "der Wand.", Answer: "an", Translation: "The picture hangs on the wall.", Hint: "Dativ (location)"},
	{ID: 217, PreGap: "Wir fahren", PostGap: "dem Auto.", Answer: "mit", Translation: "We are going by car.", Hint: "Dativ"},
	{ID: 218, PreGap: "Er kommt", PostGap: "10 Minuten.", Answer: "in", Translation: "He is coming in 10 minutes.", Hint: "Dativ (time)"},
	{ID: 219, PreGap: "Sie arbeitet", PostGap: "einer Bank.", Answer: "bei", Translation: "She works at a bank.", Hint: "Dativ"},
	{ID: 220, PreGap: "Gehen wir", PostGap: "Kino?", Answer: "ins", Translation: "Shall we go to the cinema?", Hint: "Akkusativ (in das)"},
}

var prepositionPoolB1 = []quiz.Question{
	{ID: 301, PreGap: "Wir bleiben", PostGap: "des Regens zu Hause.", Answer: "wegen", Translation: "We are staying home because of the rain.", Hint: "Genitiv"},
	{ID: 302, PreGap: "Er kam", PostGap: "seiner Erkältung zur Arbeit.", Answer: "trotz", Translation: "He came to work despite his cold.", Hint: "Genitiv"},
	{ID: 303, PreGap: "", PostGap: "der Ferien habe ich viel gelesen.", Answer: "Während", Translation: "During the holidays I read a lot.", Hint: "Genitiv"},
	{ID: 304, PreGap: "Sie wohnt", PostGap: "der Stadtgrenze.", Answer: "außerhalb", Translation: "She lives outside the city limits.", Hint: "Genitiv"},
	{ID: 305, PreGap: "Der Parkplatz ist", PostGap: "des Hotels.", Answer: "innerhalb", Translation: "The car park is within the hotel grounds.", Hint: "Genitiv"},
}
