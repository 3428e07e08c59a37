package utils

// NeutralMoodScore is returned for any emoji not in the mood map.
const NeutralMoodScore = 3

// moodScores maps mood emojis to numerical values (matching the frontend).
var moodScores = map[string]int{
	"😊": 5,
	"😀": 4,
	"😐": 3,
	"😔": 2,
	"😢": 1,
	"😡": 1,
	"😴": 2,
	"🤪": 4,
}

// MoodScore maps a mood emoji to its 1-5 score. Unknown tokens are neutral.
func MoodScore(moodEmoji string) int {
	if score, ok := moodScores[moodEmoji]; ok {
		return score
	}
	return NeutralMoodScore
}
