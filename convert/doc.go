// Package convert implements the six directed conversions of §4.3:
// Human<->LLM, Human<->Machine, LLM<->Machine. Every conversion routes
// through zdoc.Document — there is no pairwise shortcut, so each codec
// only ever has to agree with the hub model, not with the other two.
package convert

import (
	"github.com/hexdraft/zdoc"
	"github.com/hexdraft/zdoc/humantext"
	"github.com/hexdraft/zdoc/llmtext"
	"github.com/hexdraft/zdoc/machine"
)

// HumanToLLM parses Human text and re-emits it as LLM text.
func HumanToLLM(data []byte) ([]byte, error) {
	doc, err := humantext.Parse(data)
	if err != nil {
		return nil, err
	}

	return llmtext.Emit(doc)
}

// LLMToHuman parses LLM text and re-emits it as Human text.
func LLMToHuman(data []byte) ([]byte, error) {
	doc, err := llmtext.Parse(data)
	if err != nil {
		return nil, err
	}

	return humantext.Emit(doc)
}

// HumanToMachine parses Human text and re-emits it as a Machine binary
// buffer.
func HumanToMachine(data []byte) ([]byte, error) {
	doc, err := humantext.Parse(data)
	if err != nil {
		return nil, err
	}

	return machine.Write(doc)
}

// MachineToHuman reads a Machine binary buffer and re-emits it as Human
// text.
func MachineToHuman(data []byte) ([]byte, error) {
	doc, err := machine.ReadDocument(data)
	if err != nil {
		return nil, err
	}

	return humantext.Emit(doc)
}

// LLMToMachine parses LLM text and re-emits it as a Machine binary
// buffer.
func LLMToMachine(data []byte) ([]byte, error) {
	doc, err := llmtext.Parse(data)
	if err != nil {
		return nil, err
	}

	return machine.Write(doc)
}

// MachineToLLM reads a Machine binary buffer and re-emits it as LLM text.
func MachineToLLM(data []byte) ([]byte, error) {
	doc, err := machine.ReadDocument(data)
	if err != nil {
		return nil, err
	}

	return llmtext.Emit(doc)
}

// ToDocument is a small convenience shared by every converter's tests and
// callers who want the intermediate Document rather than a re-emitted
// wire format; it is not one of the six directed conversions itself.
func ToDocument(format Format, data []byte) (*zdoc.Document, error) {
	switch format {
	case FormatHuman:
		return humantext.Parse(data)
	case FormatLLM:
		return llmtext.Parse(data)
	case FormatMachine:
		return machine.ReadDocument(data)
	default:
		return nil, errUnknownFormat(format)
	}
}

// Format identifies one of the three wire representations.
type Format int

const (
	FormatHuman Format = iota
	FormatLLM
	FormatMachine
)
