package latexworkshop

// Completion is a single autocompletion entry offered to the editor.
type Completion struct {
	Command       string `json:"command"`
	Detail        string `json:"detail"`
	Documentation string `json:"documentation"`
}

// Table maps a completion keyword to its entry. The catalog table, the
// package output table, the class output table, and the extras table
// all share this shape.
type Table map[string]Completion
