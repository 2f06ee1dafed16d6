// Package advisory assembles the data snapshot handed to the assistant and
// dispatches consultation modes. It only produces context payloads and
// prompts; KPI computation lives in the metrics package and never depends on
// anything here.
package advisory

import (
	"fmt"

	"github.com/alexanderramin/overwatch/internal/llm"
)

// Mode selects among the fixed consultation intents.
type Mode string

const (
	ModeConsult      Mode = "consult"
	ModeBriefing     Mode = "briefing"
	ModeIntervention Mode = "intervention"
	ModeWeekly       Mode = "weekly"
)

// modeSpec binds a mode to its instruction template and completion task.
type modeSpec struct {
	Task        llm.TaskType
	Instruction string
}

// modeTable is the full mode -> instruction mapping. Templates live here, in
// configuration, never inside the metrics engine.
var modeTable = map[Mode]modeSpec{
	ModeConsult: {
		Task: llm.TaskConsult,
		Instruction: `You are PRIME, the study overwatch assistant. Concise, direct, no filler.
Answer the operator's question using only the situation report provided.`,
	},
	ModeBriefing: {
		Task: llm.TaskBriefing,
		Instruction: `You are PRIME, the study overwatch assistant. Concise, direct, no filler.
Deliver a morning briefing: today's protocol, schedule focus, and one priority
drawn from yesterday's numbers.`,
	},
	ModeIntervention: {
		Task: llm.TaskIntervention,
		Instruction: `You are PRIME, the study overwatch assistant. Concise, direct, no filler.
Wasted time has crossed the operator's limit. Diagnose the pattern in the
recent entries and order one corrective action. Three sentences maximum.`,
	},
	ModeWeekly: {
		Task: llm.TaskWeekly,
		Instruction: `You are PRIME, the study overwatch assistant. Concise, direct, no filler.
Summarize the week: totals per subject, score trend, anomalies that explain
dips, and one adjustment for next week.`,
	},
}

// ParseMode converts a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if _, ok := modeTable[mode]; !ok {
		return "", fmt.Errorf("unknown advisory mode %q", s)
	}
	return mode, nil
}

// Modes returns the accepted mode names for help text.
func Modes() []string {
	return []string{string(ModeConsult), string(ModeBriefing), string(ModeIntervention), string(ModeWeekly)}
}
