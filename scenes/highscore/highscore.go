// Package highscore lists the saved scores.
package highscore

import (
	"fmt"

	"github.com/automoto/husky-loves-ducky/input"
	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/scores"
	"github.com/automoto/husky-loves-ducky/text"
)

type HighScore struct{}

// Update reports true once enter is pressed.
func (h HighScore) Update(in input.State) (HighScore, bool) {
	return h, in.Pressed(input.ActionMenuSelect)
}

type Assets struct {
	title        resource.Image
	instructions resource.Image
	rows         []resource.Image
}

const firstRow = 150

func LoadAssets(m resource.Manager, store scores.Store) (Assets, error) {
	var a Assets
	big, err := m.Font(resource.KenPixel, 64)
	if err != nil {
		return a, err
	}
	if a.title, err = text.Static(big, "High Scores", text.Yellow, resource.Center(640).Top(0)); err != nil {
		return a, err
	}
	small, err := m.Font(resource.KenPixel, 32)
	if err != nil {
		return a, err
	}
	if a.instructions, err = text.Static(small, "<PRESS ENTER TO GO TO MAIN MENU>", text.Yellow, resource.Center(640).Bottom(700)); err != nil {
		return a, err
	}

	entries, err := store.Get()
	if err != nil {
		return a, err
	}
	mono, err := m.Font(resource.Joystix, 32)
	if err != nil {
		return a, err
	}
	top := firstRow
	a.rows = make([]resource.Image, 0, len(entries))
	for _, s := range entries {
		row, err := text.Static(mono, formatRow(s), text.White, resource.Center(640).Top(top))
		if err != nil {
			return a, err
		}
		top += row.Size.Y
		a.rows = append(a.rows, row)
	}
	return a, nil
}

func formatRow(s scores.Score) string {
	return fmt.Sprintf("%06d%5s%6s", s.Points, "", s.Name)
}

func (a Assets) Show(r resource.Renderer) error {
	if err := resource.ShowAll(r, a.title, a.instructions); err != nil {
		return err
	}
	for _, row := range a.rows {
		if err := row.Show(r); err != nil {
			return err
		}
	}
	return nil
}
