package entity

// Intent is the classified communicative purpose of one user utterance
// within the screening dialogue.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentReady    Intent = "ready"
	IntentAnswer   Intent = "answer"
	IntentConfused Intent = "confused"
	IntentRefuse   Intent = "refuse"
)

// Intents lists every dialogue intent the classifier may emit.
var Intents = []Intent{IntentGreeting, IntentReady, IntentAnswer, IntentConfused, IntentRefuse}
