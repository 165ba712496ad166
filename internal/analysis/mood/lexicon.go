package mood

// Entry holds the lexical signals for one category. Keywords are stored
// lowercase and matched against lowercased input; emoji are matched as exact
// sequences against the raw input.
type Entry struct {
	Keywords []string
	Emojis   []string
}

// Lexicon maps every category to its signal lists. Keywords may overlap
// across categories; competing signal is resolved by the classifier.
type Lexicon map[Category]Entry

// DefaultLexicon returns the built-in signal lists used by the app.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Happy: {
			Keywords: []string{
				"happy", "good", "great", "joy", "wonderful", "amazing", "awesome",
				"fantastic", "right", "love", "glad", "grateful", "cheerful", "excited",
				"smiling", "proud",
			},
			Emojis: []string{"😄", "😀", "😊", "😁", "🙂", "😃", "🥳", "🎉"},
		},
		Calm: {
			Keywords: []string{
				"calm", "peaceful", "relaxed", "serene", "chill", "at ease", "tranquil",
				"mellow", "rested", "unwind", "soothing",
			},
			Emojis: []string{"😌", "🧘", "😇", "🌿"},
		},
		Neutral: {
			Keywords: []string{
				"okay", "fine", "alright", "meh", "nothing special", "so-so", "average",
				"normal", "usual", "whatever",
			},
			Emojis: []string{"😐", "😑", "🤷"},
		},
		Sad: {
			Keywords: []string{
				"sad", "unhappy", "miss", "lonely", "cry", "depressed", "heartbroken",
				"grief", "hopeless", "down", "gloomy", "tearful",
			},
			Emojis: []string{"😔", "😢", "😭", "💔", "☹️", "🙁"},
		},
		Angry: {
			Keywords: []string{
				"angry", "mad", "furious", "annoyed", "irritated", "rage", "frustrated",
				"fed up", "hate", "livid",
			},
			Emojis: []string{"😠", "😡", "🤬", "💢"},
		},
		Anxious: {
			Keywords: []string{
				"anxious", "nervous", "worried", "scared", "afraid", "panic", "uneasy",
				"on edge", "restless", "dread", "jittery",
			},
			Emojis: []string{"😰", "😟", "😨", "😬"},
		},
		Stressed: {
			Keywords: []string{
				"stressed", "stressful", "tired", "too much", "overwhelmed", "exhausted",
				"pressure", "burnout", "deadline", "swamped", "drained",
			},
			Emojis: []string{"😫", "😩", "🥵", "🤯"},
		},
	}
}
