// Command binarytext is a thin CLI front-end over the codec packages:
// it maps parsed flags to one of the six encode/decode entry points
// and shuttles the result to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rafaelsantos20/BinaryText/ascii85"
	"github.com/rafaelsantos20/BinaryText/base16"
	"github.com/rafaelsantos20/BinaryText/base32"
	"github.com/rafaelsantos20/BinaryText/base32hex"
	"github.com/rafaelsantos20/BinaryText/base64"
	"github.com/rafaelsantos20/BinaryText/base64url"
	"github.com/rafaelsantos20/BinaryText/bytebuffer"
	"github.com/rafaelsantos20/BinaryText/internal/cli"
)

func init() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("app", "binarytext").Logger()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("unreachable state reached")
			exitCode = 2
		}
	}()

	args, err := cli.Parse(argv)
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}
	if args.Help {
		fmt.Print(cli.HelpText())
		return 0
	}

	if err := dispatch(args); err != nil {
		log.Error().Err(err).Msg("codec failed")
		return 1
	}
	return 0
}

func dispatch(a *cli.Args) error {
	switch a.Task {
	case cli.EncodeText:
		return dispatchEncodeText(a)
	case cli.EncodeBinary:
		return dispatchEncodeBinary(a)
	case cli.DecodeText:
		return dispatchDecodeText(a)
	case cli.DecodeBinary:
		return dispatchDecodeBinary(a)
	default:
		panic("cmd/binarytext: unreachable task")
	}
}

func readTextInput(a *cli.Args) (string, error) {
	if a.HasInputString() {
		return a.InputString, nil
	}
	b, err := os.ReadFile(a.InputFilePath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeTextOutput(a *cli.Args, s string) error {
	if a.HasOutputFilePath() {
		return os.WriteFile(a.OutputFilePath, []byte(s), 0o644)
	}
	fmt.Println(s)
	return nil
}

func base16Case(c cli.Case) base16.Case {
	switch c {
	case cli.Lowercase:
		return base16.Lowercase
	case cli.Mixed:
		return base16.Mixed
	case cli.Uppercase:
		return base16.Uppercase
	default:
		return base16.Uppercase
	}
}

func paddingEnabled(t cli.TriState) bool {
	return t != cli.Disabled
}

func dispatchEncodeText(a *cli.Args) error {
	in, err := readTextInput(a)
	if err != nil {
		return err
	}

	out, err := encodeText(a, in)
	if err != nil {
		return err
	}
	return writeTextOutput(a, out)
}

func encodeText(a *cli.Args, in string) (string, error) {
	switch a.Algorithm {
	case cli.Base16:
		return base16.EncodeText(in, base16.WithCase(base16Case(a.Case)))
	case cli.Base32:
		return base32.EncodeText(in, base32.WithPadding(paddingEnabled(a.Padding)))
	case cli.Base32Hex:
		return base32hex.EncodeText(in, base32hex.WithPadding(paddingEnabled(a.Padding)))
	case cli.Base64:
		return base64.EncodeText(in, base64.WithPadding(paddingEnabled(a.Padding)))
	case cli.Base64Url:
		return base64url.EncodeText(in, base64url.WithPadding(paddingEnabled(a.Padding)))
	case cli.Ascii85:
		return ascii85.EncodeText(in,
			ascii85.WithSpaceFolding(a.SpaceFolding == cli.Enabled),
			ascii85.WithAdobeMode(a.AdobeMode == cli.Enabled))
	default:
		panic("cmd/binarytext: unreachable algorithm")
	}
}

func decodeText(a *cli.Args, in string) (string, error) {
	switch a.Algorithm {
	case cli.Base16:
		return base16.DecodeText(in, base16.WithCase(base16Case(a.Case)))
	case cli.Base32:
		return base32.DecodeText(in)
	case cli.Base32Hex:
		return base32hex.DecodeText(in)
	case cli.Base64:
		return base64.DecodeText(in)
	case cli.Base64Url:
		return base64url.DecodeText(in)
	case cli.Ascii85:
		return ascii85.DecodeText(in,
			ascii85.WithSpaceFolding(a.SpaceFolding == cli.Enabled),
			ascii85.WithAdobeMode(a.AdobeMode == cli.Enabled))
	default:
		panic("cmd/binarytext: unreachable algorithm")
	}
}

func decodeBytes(a *cli.Args, in string) (*bytebuffer.Buffer, error) {
	switch a.Algorithm {
	case cli.Base16:
		return base16.DecodeBytes(in, base16.WithCase(base16Case(a.Case)))
	case cli.Base32:
		return base32.DecodeBytes(in)
	case cli.Base32Hex:
		return base32hex.DecodeBytes(in)
	case cli.Base64:
		return base64.DecodeBytes(in)
	case cli.Base64Url:
		return base64url.DecodeBytes(in)
	case cli.Ascii85:
		return ascii85.DecodeBytes(in,
			ascii85.WithSpaceFolding(a.SpaceFolding == cli.Enabled),
			ascii85.WithAdobeMode(a.AdobeMode == cli.Enabled))
	default:
		panic("cmd/binarytext: unreachable algorithm")
	}
}

func dispatchEncodeBinary(a *cli.Args) error {
	buf, err := bytebuffer.FromFile(a.InputFilePath)
	if err != nil {
		return err
	}

	out, err := encodeText(a, string(buf.Bytes()))
	if err != nil {
		return err
	}
	return writeTextOutput(a, out)
}

func dispatchDecodeText(a *cli.Args) error {
	in, err := readTextInput(a)
	if err != nil {
		return err
	}

	out, err := decodeText(a, in)
	if err != nil {
		return err
	}
	return writeTextOutput(a, out)
}

func dispatchDecodeBinary(a *cli.Args) error {
	in, err := readTextInput(a)
	if err != nil {
		return err
	}

	buf, err := decodeBytes(a, in)
	if err != nil {
		return err
	}
	return buf.WriteToFile(a.OutputFilePath)
}
