package assess

import "github.com/poiesic/prosecheck/core"

// Scores assigned by RateTitle.
const (
	ScoreGood = 9
	ScoreOK   = 6
	ScoreBad  = 2
)

// Rating is a scored verdict on a MatchResult.
type Rating struct {
	Score    int
	Rating   string
	Feedback string
}

// RateTitle turns a title assessment into a score and feedback.
func RateTitle(result core.MatchResult) Rating {
	switch {
	case result.ExactMatchFound && result.Position == 0:
		return Rating{
			Score:    ScoreGood,
			Rating:   "good",
			Feedback: "The exact match of the keyphrase appears at the beginning of the title. Good job!",
		}
	case result.ExactMatchFound:
		return Rating{
			Score:    ScoreOK,
			Rating:   "ok",
			Feedback: "The exact match of the keyphrase appears in the title, but not at the beginning. Move it to the beginning for the best results.",
		}
	case result.ExactMatchKeyphrase:
		return Rating{
			Score:    ScoreBad,
			Rating:   "bad",
			Feedback: "The title does not contain the exact match of the quoted keyphrase. Write it in the title as quoted, preferably at the beginning.",
		}
	case result.AllWordsFound:
		return Rating{
			Score:    ScoreOK,
			Rating:   "ok",
			Feedback: "All words of the keyphrase appear in the title, but not as an exact match. Try to write the exact match of your keyphrase at the beginning of the title.",
		}
	default:
		return Rating{
			Score:    ScoreBad,
			Rating:   "bad",
			Feedback: "Not all the words from your keyphrase appear in the title. Try to use the exact match of your keyphrase in the title.",
		}
	}
}
