package ocr

import (
	"strings"
)

type Task string

const (
	TaskText     Task = "ocr"
	TaskFormula  Task = "formula"
	TaskTable    Task = "table"
	TaskChart    Task = "chart"
	TaskSpotting Task = "spotting"
	TaskSeal     Task = "seal"
)

// ElementTasks are offered on the element recognition tab, in display order.
var ElementTasks = []Task{
	TaskText,
	TaskFormula,
	TaskTable,
	TaskChart,
	TaskSeal,
}

var taskTitles = map[Task]string{
	TaskText:     "Text",
	TaskFormula:  "Formula",
	TaskTable:    "Table",
	TaskChart:    "Chart",
	TaskSpotting: "Spotting",
	TaskSeal:     "Seal",
}

func (t Task) Valid() bool {
	_, ok := taskTitles[t]
	return ok
}

func (t Task) Title() string {
	return taskTitles[t]
}

// ParseTask accepts a label ("formula") or a display name ("Formula Recognition").
// Unknown choices fall back to text recognition.
func ParseTask(choice string) Task {
	choice = strings.ToLower(strings.TrimSpace(choice))
	choice = strings.TrimSuffix(choice, " recognition")

	if choice == "text" {
		return TaskText
	}

	if t := Task(choice); t.Valid() {
		return t
	}

	return TaskText
}
