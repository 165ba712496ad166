package content

import (
	"fmt"

	"github.com/moodlift/moodlift/backend/internal/analysis/mood"
)

func joke(m mood.Category, n int, text string) Item {
	return Item{ID: fmt.Sprintf("joke-%s-%d", m, n), Type: TypeJoke, Mood: m, Text: text}
}

func quote(m mood.Category, n int, text, author string) Item {
	return Item{ID: fmt.Sprintf("quote-%s-%d", m, n), Type: TypeQuote, Mood: m, Text: text, Attribution: author}
}

func track(m mood.Category, n int, title, artist, url string, seconds int) Item {
	return Item{ID: fmt.Sprintf("music-%s-%d", m, n), Type: TypeMusic, Mood: m, Title: title, Attribution: artist, MediaURL: url, DurationSec: seconds}
}

func game(m mood.Category, n int, title, blurb string, seconds int) Item {
	return Item{ID: fmt.Sprintf("game-%s-%d", m, n), Type: TypeGame, Mood: m, Title: title, Text: blurb, DurationSec: seconds}
}

func image(n int, title, url string) Item {
	return Item{ID: fmt.Sprintf("image-%d", n), Type: TypeImage, Title: title, MediaURL: url}
}

// Seed provides the built-in uplifting content libraries: at least three
// items per mood for jokes, quotes, music, and games, plus a shared image
// pool. These back every batch when live providers are disabled or down.
func Seed() []Item {
	items := []Item{
		// Jokes
		joke(mood.Happy, 1, "Why did the sun go to school? To get a little brighter."),
		joke(mood.Happy, 2, "I told my plants a joke. They haven't stopped rooting for me since."),
		joke(mood.Happy, 3, "What do you call a dancing lamb? A baaa-llerina."),
		joke(mood.Calm, 1, "Why do cows wear bells? Because their horns don't work."),
		joke(mood.Calm, 2, "I tried to catch some fog earlier. I mist."),
		joke(mood.Calm, 3, "What did the ocean say to the beach? Nothing, it just waved."),
		joke(mood.Neutral, 1, "I was going to tell a time-traveling joke, but you didn't like it."),
		joke(mood.Neutral, 2, "Why don't scientists trust atoms? They make up everything."),
		joke(mood.Neutral, 3, "I used to play piano by ear. Now I use my hands."),
		joke(mood.Sad, 1, "What do you call a bear with no teeth? A gummy bear."),
		joke(mood.Sad, 2, "Why did the cookie go to the doctor? It was feeling crummy."),
		joke(mood.Sad, 3, "What did one wall say to the other? I'll meet you at the corner."),
		joke(mood.Angry, 1, "Why did the tomato turn red? It saw the salad dressing."),
		joke(mood.Angry, 2, "What do you call an angry carrot? A steamed veggie."),
		joke(mood.Angry, 3, "Why don't eggs tell jokes? They'd crack each other up."),
		joke(mood.Anxious, 1, "Why was the math book sad? It had too many problems. You don't."),
		joke(mood.Anxious, 2, "What's a worry's favorite exercise? Jumping to conclusions."),
		joke(mood.Anxious, 3, "Why did the scarecrow win an award? He was outstanding in his field."),
		joke(mood.Stressed, 1, "Why did the computer take a break? It had too many tabs open. Relatable."),
		joke(mood.Stressed, 2, "What did the coffee say to the deadline? Brew can do it."),
		joke(mood.Stressed, 3, "Why did the calendar feel popular? It had so many dates."),

		// Quotes
		quote(mood.Happy, 1, "Happiness is not something ready made. It comes from your own actions.", "Dalai Lama"),
		quote(mood.Happy, 2, "The most wasted of all days is one without laughter.", "E. E. Cummings"),
		quote(mood.Happy, 3, "Joy is the simplest form of gratitude.", "Karl Barth"),
		quote(mood.Calm, 1, "Within you, there is a stillness and a sanctuary to which you can retreat at any time.", "Hermann Hesse"),
		quote(mood.Calm, 2, "Peace comes from within. Do not seek it without.", "Buddha"),
		quote(mood.Calm, 3, "Nature does not hurry, yet everything is accomplished.", "Lao Tzu"),
		quote(mood.Neutral, 1, "The quieter you become, the more you can hear.", "Ram Dass"),
		quote(mood.Neutral, 2, "Every day may not be good, but there is something good in every day.", "Alice Morse Earle"),
		quote(mood.Neutral, 3, "Wherever you go, go with all your heart.", "Confucius"),
		quote(mood.Sad, 1, "Even the darkest night will end and the sun will rise.", "Victor Hugo"),
		quote(mood.Sad, 2, "The wound is the place where the light enters you.", "Rumi"),
		quote(mood.Sad, 3, "Tears are words that need to be written.", "Paulo Coelho"),
		quote(mood.Angry, 1, "For every minute you remain angry, you give up sixty seconds of peace of mind.", "Ralph Waldo Emerson"),
		quote(mood.Angry, 2, "Speak when you are angry and you will make the best speech you will ever regret.", "Ambrose Bierce"),
		quote(mood.Angry, 3, "He who angers you conquers you.", "Elizabeth Kenny"),
		quote(mood.Anxious, 1, "You don't have to control your thoughts. You just have to stop letting them control you.", "Dan Millman"),
		quote(mood.Anxious, 2, "Nothing diminishes anxiety faster than action.", "Walter Anderson"),
		quote(mood.Anxious, 3, "Worry often gives a small thing a big shadow.", "Swedish proverb"),
		quote(mood.Stressed, 1, "It's not the load that breaks you down, it's the way you carry it.", "Lou Holtz"),
		quote(mood.Stressed, 2, "Almost everything will work again if you unplug it for a few minutes, including you.", "Anne Lamott"),
		quote(mood.Stressed, 3, "Rest is not idleness.", "John Lubbock"),

		// Music
		track(mood.Happy, 1, "Walking on Sunshine", "Katrina and the Waves", "https://open.spotify.com/track/05wIrZSwuaVWhcv5FfqeH0", 238),
		track(mood.Happy, 2, "Good Vibrations", "The Beach Boys", "https://open.spotify.com/track/4body4DSLuSLAygZFbsKbM", 219),
		track(mood.Happy, 3, "Lovely Day", "Bill Withers", "https://open.spotify.com/track/0bRXwKfigvpKZUurwqAlEh", 254),
		track(mood.Calm, 1, "Clair de Lune", "Claude Debussy", "https://open.spotify.com/track/5HoUSvrKGBgMnIRC6YS4tt", 300),
		track(mood.Calm, 2, "Weightless", "Marconi Union", "https://open.spotify.com/track/6kkwzB6hXLIONkEk9JciA6", 480),
		track(mood.Calm, 3, "River Flows in You", "Yiruma", "https://open.spotify.com/track/2agBDIr9MYDUducQPC1sFU", 190),
		track(mood.Neutral, 1, "Here Comes the Sun", "The Beatles", "https://open.spotify.com/track/6dGnYIeXmHdcikdzNNDMm2", 185),
		track(mood.Neutral, 2, "Banana Pancakes", "Jack Johnson", "https://open.spotify.com/track/451GvHwY99NKV4zdKPRWmv", 191),
		track(mood.Neutral, 3, "Put Your Records On", "Corinne Bailey Rae", "https://open.spotify.com/track/5U5X1TnRhnp9GogRfaE9XQ", 215),
		track(mood.Sad, 1, "Fix You", "Coldplay", "https://open.spotify.com/track/7LVHVU3tWfcxj5aiPFEW4Q", 295),
		track(mood.Sad, 2, "Three Little Birds", "Bob Marley", "https://open.spotify.com/track/6A9mKXlFRPMPem6ygQSt7z", 180),
		track(mood.Sad, 3, "Lean on Me", "Bill Withers", "https://open.spotify.com/track/3M8FzayQWtkvfhqgf6B9Vb", 258),
		track(mood.Angry, 1, "Let It Be", "The Beatles", "https://open.spotify.com/track/7iN1s7xHE4ifF5povM6A48", 243),
		track(mood.Angry, 2, "Shake It Off", "Taylor Swift", "https://open.spotify.com/track/0cqRj7pUJDkTCEsJkx8snD", 219),
		track(mood.Angry, 3, "Don't Worry Be Happy", "Bobby McFerrin", "https://open.spotify.com/track/19CSr8rwW05VJL2F75BGsG", 292),
		track(mood.Anxious, 1, "Breathe Me", "Sia", "https://open.spotify.com/track/6cgvDYk7YGxYYAgPMCnQLi", 271),
		track(mood.Anxious, 2, "Somewhere Over the Rainbow", "Israel Kamakawiwo'ole", "https://open.spotify.com/track/2GbxinMxqkZxYbBkvQ9A8d", 320),
		track(mood.Anxious, 3, "Orinoco Flow", "Enya", "https://open.spotify.com/track/2By7Ksj6MSp1cknCXfSjBF", 265),
		track(mood.Stressed, 1, "The Sound of Silence", "Simon & Garfunkel", "https://open.spotify.com/track/5y788ya4NvwhBznoDIcXwK", 185),
		track(mood.Stressed, 2, "Gymnopedie No. 1", "Erik Satie", "https://open.spotify.com/track/5NGtFXVpXSvwunEIGeviY3", 210),
		track(mood.Stressed, 3, "Better Days", "OneRepublic", "https://open.spotify.com/track/7K3BhSpAxZBznislvUMVtn", 204),

		// Mini-games
		game(mood.Happy, 1, "Gratitude Sprint", "List three good things from today before the timer runs out.", 60),
		game(mood.Happy, 2, "Smile Relay", "Send a kind message to someone who made you smile this week.", 120),
		game(mood.Happy, 3, "Color Hunt", "Find five yellow things around you. Bonus points for unexpected ones.", 90),
		game(mood.Calm, 1, "Box Breathing", "Breathe in for 4, hold for 4, out for 4, hold for 4. Four rounds.", 64),
		game(mood.Calm, 2, "Cloud Watching", "Look out a window and name the shapes you see for two minutes.", 120),
		game(mood.Calm, 3, "Slow Sip", "Make a warm drink and take ten slow, mindful sips.", 300),
		game(mood.Neutral, 1, "Word Chain", "Pick a word and build a chain where each word starts with the last letter.", 120),
		game(mood.Neutral, 2, "Desk Safari", "Find the oldest object within arm's reach and recall where it came from.", 90),
		game(mood.Neutral, 3, "Two Truths", "Write two truths and a lie about your day. Quiz a friend later.", 120),
		game(mood.Sad, 1, "Comfort Playlist", "Queue the one song that always helps, and just listen.", 240),
		game(mood.Sad, 2, "Tiny Win", "Do one two-minute task and check it off. Momentum counts.", 120),
		game(mood.Sad, 3, "Photo Rewind", "Scroll to a photo that makes you smile and remember the moment.", 90),
		game(mood.Angry, 1, "Paper Toss", "Crumple a page, shoot ten free throws into the bin. Track your score.", 120),
		game(mood.Angry, 2, "Power Walk", "Walk fast for five minutes, then notice how your shoulders feel.", 300),
		game(mood.Angry, 3, "Unsent Letter", "Write what you want to say, read it once, then delete it.", 180),
		game(mood.Anxious, 1, "5-4-3-2-1", "Name 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you taste.", 120),
		game(mood.Anxious, 2, "Worry Parking", "Write every worry on a list and pick one fifteen-minute slot to revisit it.", 180),
		game(mood.Anxious, 3, "Cold Splash", "Splash cool water on your face and take three slow breaths.", 60),
		game(mood.Stressed, 1, "Tab Triage", "Close every browser tab you haven't touched today. Count the casualties.", 120),
		game(mood.Stressed, 2, "Shoulder Drop", "Raise your shoulders to your ears, hold for five, let go. Repeat five times.", 90),
		game(mood.Stressed, 3, "One Thing", "Pick the single smallest next step and do only that.", 180),

		// Shared image pool
		image(1, "Sunrise over the hills", "https://images.moodlift.app/static/sunrise.jpg"),
		image(2, "Golden retriever puppy", "https://images.moodlift.app/static/puppy.jpg"),
		image(3, "Forest light", "https://images.moodlift.app/static/forest.jpg"),
		image(4, "Calm lake at dusk", "https://images.moodlift.app/static/lake.jpg"),
		image(5, "Field of sunflowers", "https://images.moodlift.app/static/sunflowers.jpg"),
		image(6, "Kitten in a blanket", "https://images.moodlift.app/static/kitten.jpg"),
		image(7, "Northern lights", "https://images.moodlift.app/static/aurora.jpg"),
		image(8, "Hot air balloons", "https://images.moodlift.app/static/balloons.jpg"),
	}
	return items
}
