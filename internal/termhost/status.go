package termhost

import (
	"fmt"
	"strings"

	"Waystation/internal/input"
	"Waystation/internal/scene"
	"Waystation/scripts"
)

// statusLines describes every scripted object, one line each, followed by the
// pointer and held actions.
func statusLines(s *scene.Scene, capture input.CaptureMode) []string {
	var lines []string
	for _, name := range s.Names() {
		e, _ := s.Entry(name)
		var line string
		switch sc := e.Script.(type) {
		case *scripts.Jumpgate:
			line = fmt.Sprintf("inner %.3f -> %.3f  outer %.3f -> %.3f",
				sc.InnerVelocity(), sc.TargetInnerVelocity(), sc.OuterVelocity(), sc.TargetOuterVelocity())
		case *scripts.Lever:
			line = fmt.Sprintf("%+.2f", sc.Position())
			if sc.Held() {
				line += " held"
			}
		case *scripts.Button:
			line = "up"
			if sc.Pressed() {
				line = "down"
			}
			if sc.IsToggle() {
				line += " (toggle)"
			}
		case *scripts.Player:
			mode := "walk"
			if sc.InPrecisionMode() {
				mode = "precision"
			}
			line = fmt.Sprintf("%s fov %.0f yaw %.2f", mode, sc.Fov(), sc.Yaw())
		case *scripts.Screen:
			line = "off"
			if sc.On() {
				line = "on"
				if c := sc.Canvas(); c != nil {
					line += ": " + strings.Join(c.Lines, " | ")
				}
			}
		case *scripts.Station:
			r := sc.Rotation()
			line = fmt.Sprintf("rotation %.2f %.2f %.2f", r.X(), r.Y(), r.Z())
		default:
			continue
		}
		lines = append(lines, fmt.Sprintf("%-14s %s", name, line))
	}

	held := s.Actions.Held()
	if len(held) == 0 {
		held = []string{"-"}
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%-14s %s", "pointer", capture),
		fmt.Sprintf("%-14s %s", "held", strings.Join(held, " ")),
	)
	return lines
}

func leverBar(pos float32, height int) int {
	// row 0 is the top; +1 maps to the top row.
	mid := float32(height-1) / 2
	row := int(mid - pos*mid + 0.5)
	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return row
}
