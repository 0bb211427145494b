// Package catalog holds the fixed 10-module disaster-preparedness course.
// The course content is statically defined: every deployment serves the same
// modules, so progress rows from any device always match a catalog entry.
package catalog

import (
	"strconv"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// CourseLength is the number of modules in the course. Completing all of
// them earns the certificate and the course-master badge.
const CourseLength = 10

// Game types attached to modules.
const (
	GameDragDrop    = "drag-drop"
	GameMaze        = "maze"
	GameSpotHazard  = "spot-hazard"
	GameMemoryMatch = "memory-match"
	GameSimulation  = "simulation"
)

// Question types.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
)

// QuizQuestion is one question in a module's quiz.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Module is one unit of the course: a video, a game, and a quiz.
type Module struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	VideoID     string         `json:"videoId"`
	Duration    string         `json:"duration"`
	GameType    string         `json:"gameType"`
	Quiz        []QuizQuestion `json:"quiz"`
}

// All returns the course modules in order.
func All() []Module {
	return modules
}

// Get returns the module with the given ID.
func Get(id string) (*Module, error) {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Exists reports whether a module with the given ID is part of the course.
func Exists(id string) bool {
	_, err := Get(id)
	return err == nil
}

// Ordinal returns the 1-based position of a module ID in the course
// sequence, or 0 if the ID is not numeric. Module IDs are their ordinals
// as strings ("1" through "10").
func Ordinal(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > CourseLength {
		return 0
	}
	return n
}

// PredecessorID returns the ID of the module immediately before the given
// one in the course sequence, or "" for the first module (and for IDs that
// are not part of the course).
func PredecessorID(id string) string {
	n := Ordinal(id)
	if n <= 1 {
		return ""
	}
	return strconv.Itoa(n - 1)
}
