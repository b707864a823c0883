// Package ocr turns raw recognized words into coherent text groups and wraps
// the Tesseract engine behind a small capability interface.
package ocr

import (
	"math"
	"strings"

	"github.com/calG1/PDF-Translator/pkg/models"
	"github.com/calG1/PDF-Translator/pkg/utils"
)

const (
	// Words below this confidence are discarded before grouping.
	MinConfidence = 50.0
	// A word belongs to the current group's line when its vertical offset
	// from the last appended word is under half that word's font height.
	sameLineFactor = 0.5
	// A word is close enough to merge when the horizontal gap to the last
	// appended word is under 2.5 times that word's font height.
	closeGapFactor = 2.5
)

// GroupWords clusters an ordered word sequence into line/phrase groups with a
// single left-to-right scan. Each candidate is compared against the last word
// appended to the open group, not the group's first word; the thresholds are
// heuristic but the scan order makes the result reproducible.
func GroupWords(words []models.Word) [][]models.Word {
	var groups [][]models.Word
	var current []models.Word

	for _, word := range words {
		if word.Confidence < MinConfidence || word.Empty() {
			continue
		}
		if len(current) == 0 {
			current = append(current, word)
			continue
		}

		last := current[len(current)-1]
		verticalGap := math.Abs(word.BBox.Y0 - last.BBox.Y0)
		horizontalGap := word.BBox.X0 - last.BBox.X1
		fontHeight := last.BBox.Y1 - last.BBox.Y0

		sameLine := verticalGap < fontHeight*sameLineFactor
		closeEnough := horizontalGap < fontHeight*closeGapFactor
		if sameLine && closeEnough {
			current = append(current, word)
		} else {
			groups = append(groups, current)
			current = []models.Word{word}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// GroupText joins a group's words into one string.
func GroupText(group []models.Word) string {
	return strings.Join(utils.Map(group, func(w models.Word) string {
		return w.Text
	}), " ")
}

// GroupBounds computes the union box of a group. Horizontal bounds trust the
// scan order (first word's left edge, last word's right edge); vertical
// bounds take the min/max over all words so ascenders and descenders of
// every word stay covered.
func GroupBounds(group []models.Word) models.Box {
	box := models.Box{
		X0: group[0].BBox.X0,
		X1: group[len(group)-1].BBox.X1,
		Y0: math.Inf(1),
		Y1: math.Inf(-1),
	}
	for _, w := range group {
		box.Y0 = math.Min(box.Y0, w.BBox.Y0)
		box.Y1 = math.Max(box.Y1, w.BBox.Y1)
	}
	return box
}
