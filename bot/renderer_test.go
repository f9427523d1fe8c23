package bot

import (
	"testing"

	"wordleworld/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRow(t *testing.T) {
	renderer := NewBoardRenderer()

	pattern, err := entities.ScoreGuess("crane", "crate")
	require.NoError(t, err)

	row := renderer.RenderRow(entities.Attempt{Word: "crane", Pattern: pattern})
	assert.Equal(t, "🟩🟩🟩⬛🟩  `CRANE`", row)
}

func TestRenderBoard_PadsToTotalRows(t *testing.T) {
	renderer := NewBoardRenderer()

	pattern, err := entities.ScoreGuess("slate", "crate")
	require.NoError(t, err)

	board := renderer.RenderBoard([]entities.Attempt{{Word: "slate", Pattern: pattern}}, 3)
	assert.Equal(t, "⬛⬛🟩🟩🟩  `SLATE`\n⬜⬜⬜⬜⬜\n⬜⬜⬜⬜⬜", board)
}

func TestRenderBoard_EmptyIsAllBlanks(t *testing.T) {
	renderer := NewBoardRenderer()

	board := renderer.RenderBoard(nil, 2)
	assert.Equal(t, "⬜⬜⬜⬜⬜\n⬜⬜⬜⬜⬜", board)
}
