// Package cli parses and validates the binarytext command line, the
// argument-compatibility surface described only as an external
// collaborator in the codec specification. It never touches a codec
// package directly; cmd/binarytext maps a parsed Args to codec calls.
package cli

import (
	"fmt"
	"strings"
)

// Task selects what the CLI does with its input.
type Task byte

const (
	NoTask Task = iota
	EncodeText
	EncodeBinary
	DecodeText
	DecodeBinary
)

// Algorithm selects which codec handles the request.
type Algorithm byte

const (
	NoAlgorithm Algorithm = iota
	Base16
	Base32
	Base32Hex
	Base64
	Base64Url
	Ascii85
)

// Case mirrors base16.Case for the CLI's own validation, kept
// independent of the codec package so this package has no import
// cycle risk and can validate before any codec is chosen.
type Case byte

const (
	NoCase Case = iota
	Lowercase
	Mixed
	Uppercase
)

// TriState models a boolean flag that is either unset, or explicitly
// on/off, so "not passed" can be distinguished from "passed as false".
type TriState byte

const (
	Unset TriState = iota
	Enabled
	Disabled
)

// Args holds a fully parsed and validated invocation.
type Args struct {
	Task          Task
	Algorithm     Algorithm
	Case          Case
	Padding       TriState
	SpaceFolding  TriState
	AdobeMode     TriState
	InputString   string
	InputFilePath string
	OutputFilePath string
	Help          bool
}

// Error reports a malformed or incompatible command line. It carries
// no source-location record: the CLI collaborator sits outside the
// codec core's error taxonomy and is meant to be printed verbatim.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func newErrorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (a *Args) HasInputString() bool   { return a.InputString != "" }
func (a *Args) HasInputFilePath() bool { return a.InputFilePath != "" }
func (a *Args) HasOutputFilePath() bool { return a.OutputFilePath != "" }

// Parse parses argv (excluding argv[0]) into a validated Args.
func Parse(argv []string) (*Args, error) {
	a := &Args{}

	for _, raw := range argv {
		if raw == "-h" || raw == "--help" {
			a.Help = true
			return a, nil
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(raw, "--"), "=")
		if !strings.HasPrefix(raw, "--") {
			return nil, newErrorf("invalid argument: %q", raw)
		}

		switch name {
		case "encode-text", "encode-binary", "decode-text", "decode-binary":
			if hasValue {
				return nil, newErrorf("unexpected value for %q", raw)
			}
			if err := a.setTask(name); err != nil {
				return nil, err
			}
		case "input-string":
			if err := requireValue(raw, hasValue, value); err != nil {
				return nil, err
			}
			if a.HasInputString() {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.InputString = value
		case "input-file":
			if err := requireValue(raw, hasValue, value); err != nil {
				return nil, err
			}
			if a.HasInputFilePath() {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.InputFilePath = value
		case "output-file":
			if err := requireValue(raw, hasValue, value); err != nil {
				return nil, err
			}
			if a.HasOutputFilePath() {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.OutputFilePath = value
		case "algorithm":
			if err := requireValue(raw, hasValue, value); err != nil {
				return nil, err
			}
			if a.Algorithm != NoAlgorithm {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			alg, err := parseAlgorithm(value)
			if err != nil {
				return nil, err
			}
			a.Algorithm = alg
		case "case":
			if err := requireValue(raw, hasValue, value); err != nil {
				return nil, err
			}
			if a.Case != NoCase {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			c, err := parseCase(value)
			if err != nil {
				return nil, err
			}
			a.Case = c
		case "without-padding":
			if hasValue {
				return nil, newErrorf("unexpected value for %q", raw)
			}
			if a.Padding != Unset {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.Padding = Disabled
		case "fold-spaces":
			if hasValue {
				return nil, newErrorf("unexpected value for %q", raw)
			}
			if a.SpaceFolding != Unset {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.SpaceFolding = Enabled
		case "adobe-mode":
			if hasValue {
				return nil, newErrorf("unexpected value for %q", raw)
			}
			if a.AdobeMode != Unset {
				return nil, newErrorf("conflicting arguments: %q", raw)
			}
			a.AdobeMode = Enabled
		default:
			return nil, newErrorf("invalid argument: %q", raw)
		}
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func requireValue(raw string, hasValue bool, value string) error {
	if !hasValue || value == "" {
		return newErrorf("missing value for %q", raw)
	}
	return nil
}

func (a *Args) setTask(name string) error {
	newTask := map[string]Task{
		"encode-text":   EncodeText,
		"encode-binary": EncodeBinary,
		"decode-text":   DecodeText,
		"decode-binary": DecodeBinary,
	}[name]

	if a.Task != NoTask {
		return newErrorf("conflicting arguments: %q and an earlier task flag", "--"+name)
	}
	a.Task = newTask
	return nil
}

func parseAlgorithm(value string) (Algorithm, error) {
	switch value {
	case "base16":
		return Base16, nil
	case "base32":
		return Base32, nil
	case "base32hex":
		return Base32Hex, nil
	case "base64":
		return Base64, nil
	case "base64url":
		return Base64Url, nil
	case "ascii85":
		return Ascii85, nil
	default:
		return NoAlgorithm, newErrorf("invalid algorithm: %q", value)
	}
}

func parseCase(value string) (Case, error) {
	switch value {
	case "lowercase":
		return Lowercase, nil
	case "mixed":
		return Mixed, nil
	case "uppercase":
		return Uppercase, nil
	default:
		return NoCase, newErrorf("invalid case: %q", value)
	}
}

// validate applies the compatibility checks the specification assigns
// to the CLI collaborator: task presence, input/output requirements,
// and algorithm/option pairing.
func (a *Args) validate() error {
	if a.Task == NoTask {
		return newErrorf(`no "--encode-text", "--encode-binary", "--decode-text" or "--decode-binary" argument provided`)
	}

	if a.Task == DecodeBinary && !a.HasOutputFilePath() {
		return newErrorf(`no "--output-file=OPTION" argument provided`)
	}

	if a.HasInputString() && a.HasInputFilePath() {
		return newErrorf(`conflicting arguments: "--input-string=OPTION" and "--input-file=OPTION"`)
	}
	// encode-binary reads a raw binary file directly into a ByteBuffer;
	// it has no textual form and so cannot come from --input-string.
	// decode-binary's input is still text (the encoded form) - only its
	// output is binary - so it accepts either input source like the
	// text tasks do.
	if a.Task == EncodeBinary {
		if a.HasInputString() {
			return newErrorf(`conflicting arguments: "--input-string=OPTION" and "--encode-binary"`)
		}
		if !a.HasInputFilePath() {
			return newErrorf(`no "--input-file=OPTION" argument provided`)
		}
	} else if !a.HasInputString() && !a.HasInputFilePath() {
		return newErrorf(`no "--input-string=OPTION" or "--input-file=OPTION" argument provided`)
	}

	if a.Case == Mixed && (a.Task == EncodeText || a.Task == EncodeBinary) {
		return newErrorf(`conflicting arguments: "--case=mixed" and an encode task`)
	}

	if a.Algorithm == NoAlgorithm {
		a.Algorithm = Base16
	}

	return a.validateAlgorithmPairing()
}

func (a *Args) validateAlgorithmPairing() error {
	algName := algorithmName(a.Algorithm)

	switch a.Algorithm {
	case Base16:
		if a.Padding != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--without-padding", "--algorithm="+algName)
		}
		if a.SpaceFolding != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--fold-spaces", "--algorithm="+algName)
		}
		if a.AdobeMode != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--adobe-mode", "--algorithm="+algName)
		}
	case Base32, Base32Hex, Base64, Base64Url:
		if a.Case != NoCase {
			return newErrorf("conflicting arguments: %q and %q", "--case=OPTION", "--algorithm="+algName)
		}
		if a.SpaceFolding != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--fold-spaces", "--algorithm="+algName)
		}
		if a.AdobeMode != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--adobe-mode", "--algorithm="+algName)
		}
		if a.Padding != Unset && (a.Task == DecodeText || a.Task == DecodeBinary) {
			return newErrorf("conflicting arguments: %q and a decode task", "--without-padding")
		}
	case Ascii85:
		if a.Case != NoCase {
			return newErrorf("conflicting arguments: %q and %q", "--case=OPTION", "--algorithm=ascii85")
		}
		if a.Padding != Unset {
			return newErrorf("conflicting arguments: %q and %q", "--without-padding", "--algorithm=ascii85")
		}
	}

	return nil
}

func algorithmName(a Algorithm) string {
	switch a {
	case Base16:
		return "base16"
	case Base32:
		return "base32"
	case Base32Hex:
		return "base32hex"
	case Base64:
		return "base64"
	case Base64Url:
		return "base64url"
	case Ascii85:
		return "ascii85"
	default:
		return "unknown"
	}
}

const helpText = `usage: binarytext [ARGUMENTS]

  -h, --help                     print this message and exit
  --encode-text, --encode-binary,
  --decode-text, --decode-binary select the task (mutually exclusive)
  --input-string=S               input is the literal string S
  --input-file=P                 input is the file at path P
  --output-file=P                write output to P (stdout otherwise)
  --algorithm=NAME                base16 (default), base32, base32hex,
                                  base64, base64url, ascii85
  --case=NAME                     lowercase, mixed, uppercase (base16 only)
  --without-padding               omit trailing '=' (base32/base32hex/base64/base64url encode only)
  --fold-spaces, --adobe-mode     ascii85 only
`

// HelpText returns the usage text printed for -h/--help.
func HelpText() string { return helpText }
