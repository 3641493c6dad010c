// Package progression holds the pure rules that gate advancement through
// the seven books: pass/fail, points, chapter unlocking, and grades.
package progression

import "math"

const (
	// PassThreshold is the score fraction required to unlock the next chapter.
	PassThreshold = 0.7

	// PointsPerCorrect is the chapter-quiz award per correct answer.
	PointsPerCorrect = 10

	// DailyPointsPerCorrect is the daily-quiz award per correct answer.
	DailyPointsPerCorrect = 15

	// ChaptersPerBook is the rollover length used by progression arithmetic.
	// Book 1's question data runs longer (see questionbank.ChapterCount); the
	// unlock ladder still rolls over at 8, matching observed behavior.
	ChaptersPerBook = 8

	// MaxBook is the last book with content.
	MaxBook = 7
)

// QuizPoints converts a correct-answer count into house points.
func QuizPoints(score float64) int {
	return int(math.Floor(score * PointsPerCorrect))
}

// DailyQuizPoints converts a daily-quiz score into house points.
func DailyQuizPoints(score float64) int {
	return int(math.Floor(score * DailyPointsPerCorrect))
}

// IsPassing reports whether score out of total meets the pass threshold.
// Exactly 70% passes.
func IsPassing(score, total int) bool {
	if total <= 0 {
		return false
	}
	return float64(score)/float64(total) >= PassThreshold
}

// Next returns the progress position after passing the quiz at (year, chapter):
// the next chapter, or chapter 1 of the next year past chapter 8. Callers must
// only invoke it on a pass; a fail leaves progress where it was.
//
// There is deliberately no clamp at book 7: Next(7, 8) yields (8, 1), a
// position with no content behind it. The chapter ladder never offers book 7
// chapter 8's successor, so the state is unreachable through play.
func Next(year, chapter int) (int, int) {
	next := chapter + 1
	if next > ChaptersPerBook {
		return year + 1, 1
	}
	return year, next
}

// IsFinished reports whether the position is past all authored content.
func IsFinished(year int) bool {
	return year > MaxBook
}

// IsChapterUnlocked reports whether the target chapter is playable for a user
// at (userBook, userChapter). Earlier books are fully unlocked, later books
// fully locked, and within the current book everything up to the user's
// chapter is open.
func IsChapterUnlocked(userBook, userChapter, targetBook, targetChapter int) bool {
	if targetBook < userBook {
		return true
	}
	if targetBook > userBook {
		return false
	}
	return targetChapter <= userChapter
}

// Grade maps a score to its examination grade label.
func Grade(score, total int) string {
	if total <= 0 {
		return "Dreadful"
	}
	pct := float64(score) / float64(total) * 100
	switch {
	case pct >= 90:
		return "Outstanding"
	case pct >= 80:
		return "Exceeds Expectations"
	case pct >= 70:
		return "Acceptable"
	case pct >= 60:
		return "Poor"
	default:
		return "Dreadful"
	}
}
