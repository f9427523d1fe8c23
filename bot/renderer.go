package bot

import (
	"strings"

	"wordleworld/domain/entities"
	"wordleworld/domain/interfaces"
)

const (
	tileCorrect = "🟩"
	tilePresent = "🟨"
	tileAbsent  = "⬛"
	tileBlank   = "⬜"
)

// boardRenderer turns scored attempts into emoji tile rows.
type boardRenderer struct{}

// NewBoardRenderer creates the emoji board renderer.
func NewBoardRenderer() interfaces.Renderer {
	return &boardRenderer{}
}

// RenderRow renders one scored guess as a tile row followed by the word.
func (r *boardRenderer) RenderRow(attempt entities.Attempt) string {
	var b strings.Builder
	for _, v := range attempt.Pattern {
		switch v {
		case entities.VerdictCorrect:
			b.WriteString(tileCorrect)
		case entities.VerdictPresent:
			b.WriteString(tilePresent)
		default:
			b.WriteString(tileAbsent)
		}
	}
	b.WriteString("  `")
	b.WriteString(strings.ToUpper(attempt.Word))
	b.WriteString("`")
	return b.String()
}

// RenderBoard renders all attempts, padded with blank rows up to
// totalRows so the remaining budget is visible at a glance.
func (r *boardRenderer) RenderBoard(attempts []entities.Attempt, totalRows int) string {
	rows := make([]string, 0, totalRows)
	for _, attempt := range attempts {
		rows = append(rows, r.RenderRow(attempt))
	}
	for len(rows) < totalRows {
		rows = append(rows, strings.Repeat(tileBlank, entities.WordLength))
	}
	return strings.Join(rows, "\n")
}
