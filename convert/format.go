package convert

import "fmt"

func (f Format) String() string {
	switch f {
	case FormatHuman:
		return "Human"
	case FormatLLM:
		return "LLM"
	case FormatMachine:
		return "Machine"
	default:
		return "Unknown"
	}
}

func errUnknownFormat(f Format) error {
	return fmt.Errorf("convert: unknown format %v", f)
}
