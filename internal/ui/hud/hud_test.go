package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"chosenoffset.com/gallery/internal/render/rendertest"
)

func TestScoreTextIsLocaleFormatted(t *testing.T) {
	h := New(nil, &rendertest.Renderer{}, 800, 600)
	assert.Equal(t, "Score: 0", h.ScoreText())

	h.SetScore(1234)
	assert.Equal(t, "Score: 1,234", h.ScoreText())

	cfg := DefaultConfig()
	cfg.Language = language.German
	de := New(cfg, &rendertest.Renderer{}, 800, 600)
	de.SetScore(1234)
	assert.Equal(t, "Score: 1.234", de.ScoreText())
}

func TestCrosshairOnlyWhileLocked(t *testing.T) {
	r := &rendertest.Renderer{}
	h := New(nil, r, 800, 600)
	screen := rendertest.NewImage(800, 600)

	h.Draw(screen, false)
	assert.Equal(t, []string{"Score: 0"}, r.Texts)
	assert.Zero(t, r.Shapes)

	h.Draw(screen, true)
	assert.Equal(t, 5, r.Shapes, "four arms and a center dot")
}
